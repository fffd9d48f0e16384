// Package turnstile login formundaki insan doğrulama token'ını Cloudflare
// siteverify ucunda doğrular. Tek bir senkron round-trip'tir; retry yoktur.
package turnstile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

var ErrVerificationFailed = errors.New("insan doğrulaması başarısız")

// Verifier siteverify istemcisi. Secret boşsa doğrulama atlanır
// (lokal geliştirmede widget render edilmez).
type Verifier struct {
	Secret   string
	Endpoint string
	Client   *http.Client
}

// NewVerifier verilen secret ile Verifier oluşturur.
func NewVerifier(secret string) *Verifier {
	return &Verifier{
		Secret:   secret,
		Endpoint: DefaultEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify token'ı doğrular. Başarısız doğrulama ErrVerificationFailed,
// ağ/format sorunları ise ham hata döndürür.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) error {
	if v.Secret == "" {
		return nil
	}
	if strings.TrimSpace(token) == "" {
		return ErrVerificationFailed
	}

	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("siteverify beklenmeyen durum kodu: %d", resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return err
	}
	if !body.Success {
		return ErrVerificationFailed
	}
	return nil
}
