// services/mail_service.go
package services

import (
	"context"
	"fmt"

	"panel.naal.org.tr/configs"
	"panel.naal.org.tr/configs/configslog"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// MailServiceError özel servis hataları
type MailServiceError string

func (e MailServiceError) Error() string { return string(e) }

const (
	ErrMailNotConfigured MailServiceError = "e-posta servisi yapılandırılmamış"
	ErrMailSendFailed    MailServiceError = "e-posta gönderilemedi"
)

// IMailService giden e-posta işlemleri için arayüz.
type IMailService interface {
	SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error
}

// MailService Resend üzerinden e-posta gönderir.
type MailService struct {
	client *resend.Client
	from   string
}

// NewMailService yeni bir MailService örneği oluşturur.
// RESEND_API_KEY tanımlı değilse client nil kalır ve gönderimler
// ErrMailNotConfigured döndürür.
func NewMailService() IMailService {
	apiKey := configs.ResendAPIKey()
	svc := &MailService{from: configs.MailFrom()}
	if apiKey != "" {
		svc.client = resend.NewClient(apiKey)
	}
	return svc
}

func (s *MailService) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	if s.client == nil {
		configslog.Log.Warn("E-posta gönderimi atlandı: RESEND_API_KEY tanımlı değil", zap.String("to", toEmail))
		return ErrMailNotConfigured
	}

	html := fmt.Sprintf(`<p>Merhaba %s,</p>
<p>Kulüp paneli hesabınız için parola sıfırlama isteği aldık. Yeni parolanızı belirlemek için aşağıdaki bağlantıya tıklayın:</p>
<p><a href="%s">%s</a></p>
<p>Bağlantı 1 saat boyunca geçerlidir. Bu isteği siz yapmadıysanız bu e-postayı yok sayabilirsiniz.</p>`, toName, resetURL, resetURL)

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "Kulüp Paneli - Parola Sıfırlama",
		Html:    html,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		configslog.Log.Error("Resend gönderimi başarısız", zap.String("to", toEmail), zap.Error(err))
		return ErrMailSendFailed
	}

	configslog.Log.Info("Parola sıfırlama e-postası gönderildi", zap.String("to", toEmail), zap.String("mail_id", sent.Id))
	return nil
}

var _ IMailService = (*MailService)(nil)
