// services/upload_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"panel.naal.org.tr/configs"
	"panel.naal.org.tr/configs/configslog"

	"go.uber.org/zap"
)

// UploadServiceError özel servis hataları
type UploadServiceError string

func (e UploadServiceError) Error() string { return string(e) }

const (
	ErrUploadFileRequired  UploadServiceError = "dosya seçilmedi"
	ErrUploadNotPdf        UploadServiceError = "yalnızca PDF dosyası yüklenebilir"
	ErrUploadNotImage      UploadServiceError = "yalnızca görsel dosyası yüklenebilir"
	ErrUploadPdfTooLarge   UploadServiceError = "PDF dosyası 100MB sınırını aşıyor"
	ErrUploadImageTooLarge UploadServiceError = "görsel dosyası 10MB sınırını aşıyor"
	ErrUploadFailed        UploadServiceError = "dosya yüklenemedi"
	ErrUploadNoAPIKey      UploadServiceError = "görsel yükleme servisi yapılandırılmamış"
)

const (
	// MaxPdfUploadSize Catbox'a gönderilecek PDF için üst sınır.
	MaxPdfUploadSize = 100 << 20
	// MaxImageUploadSize ImgBB'ye gönderilecek görsel için üst sınır.
	MaxImageUploadSize = 10 << 20

	catboxEndpoint = "https://catbox.moe/user/api.php"
	imgbbEndpoint  = "https://api.imgbb.com/1/upload"
)

// IUploadService dış barındırma servislerine dosya aktarımı için arayüz.
// Tarayıcıdan gelen dosya sunucu üzerinden geçirilir; istemci API
// anahtarlarını hiç görmez.
type IUploadService interface {
	UploadPdf(ctx context.Context, file *multipart.FileHeader) (string, error)
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// UploadService IUploadService arayüzünü uygular. Endpoint alanları
// test için değiştirilebilir.
type UploadService struct {
	client         *http.Client
	catboxURL      string
	catboxUserHash string
	imgbbURL       string
	imgbbAPIKey    string
}

// NewUploadService yeni bir UploadService örneği oluşturur.
func NewUploadService() IUploadService {
	return &UploadService{
		client:         &http.Client{Timeout: 120 * time.Second},
		catboxURL:      catboxEndpoint,
		catboxUserHash: configs.CatboxUserHash(),
		imgbbURL:       imgbbEndpoint,
		imgbbAPIKey:    configs.IBBAPIKey(),
	}
}

// UploadPdf dosyayı Catbox'a aktarır ve kalıcı bağlantıyı döndürür.
// Tür ve boyut kontrolleri ağa çıkmadan önce yapılır; başarısızlıkta
// yeniden deneme yoktur.
func (s *UploadService) UploadPdf(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrUploadFileRequired
	}
	if !strings.EqualFold(file.Header.Get("Content-Type"), "application/pdf") {
		return "", ErrUploadNotPdf
	}
	if file.Size > MaxPdfUploadSize {
		return "", ErrUploadPdfTooLarge
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("reqtype", "fileupload"); err != nil {
		return "", ErrUploadFailed
	}
	if s.catboxUserHash != "" {
		if err := writer.WriteField("userhash", s.catboxUserHash); err != nil {
			return "", ErrUploadFailed
		}
	}
	if err := copyMultipartFile(writer, "fileToUpload", file); err != nil {
		configslog.Log.Error("Catbox: dosya gövdesi hazırlanamadı", zap.String("dosya", file.Filename), zap.Error(err))
		return "", ErrUploadFailed
	}
	if err := writer.Close(); err != nil {
		return "", ErrUploadFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.catboxURL, &body)
	if err != nil {
		return "", ErrUploadFailed
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		configslog.Log.Error("Catbox isteği başarısız", zap.String("dosya", file.Filename), zap.Error(err))
		return "", ErrUploadFailed
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", ErrUploadFailed
	}
	link := strings.TrimSpace(string(raw))

	// Catbox başarıda düz metin URL döndürür; diğer her şey hata mesajıdır.
	if resp.StatusCode != http.StatusOK ||
		(!strings.HasPrefix(link, "https://files.catbox.moe/") && !strings.HasPrefix(link, "https://catbox.moe/")) {
		configslog.Log.Error("Catbox beklenmeyen yanıt", zap.Int("status", resp.StatusCode), zap.String("yanit", link))
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, link)
	}

	configslog.SLog.Infof("PDF yüklendi: %s -> %s", file.Filename, link)
	return link, nil
}

// UploadImage dosyayı ImgBB'ye aktarır ve görüntü bağlantısını döndürür.
func (s *UploadService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrUploadFileRequired
	}
	if !strings.HasPrefix(strings.ToLower(file.Header.Get("Content-Type")), "image/") {
		return "", ErrUploadNotImage
	}
	if file.Size > MaxImageUploadSize {
		return "", ErrUploadImageTooLarge
	}
	if s.imgbbAPIKey == "" {
		return "", ErrUploadNoAPIKey
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := copyMultipartFile(writer, "image", file); err != nil {
		configslog.Log.Error("ImgBB: dosya gövdesi hazırlanamadı", zap.String("dosya", file.Filename), zap.Error(err))
		return "", ErrUploadFailed
	}
	if err := writer.Close(); err != nil {
		return "", ErrUploadFailed
	}

	endpoint := s.imgbbURL + "?key=" + url.QueryEscape(s.imgbbAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", ErrUploadFailed
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		configslog.Log.Error("ImgBB isteği başarısız", zap.String("dosya", file.Filename), zap.Error(err))
		return "", ErrUploadFailed
	}
	defer resp.Body.Close()

	var parsed struct {
		Success bool `json:"success"`
		Data    struct {
			URL string `json:"url"`
		} `json:"data"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		configslog.Log.Error("ImgBB yanıtı çözümlenemedi", zap.Int("status", resp.StatusCode), zap.Error(err))
		return "", ErrUploadFailed
	}
	if !parsed.Success || parsed.Data.URL == "" {
		configslog.Log.Error("ImgBB yükleme reddedildi", zap.Int("status", resp.StatusCode), zap.String("mesaj", parsed.Error.Message))
		return "", ErrUploadFailed
	}

	configslog.SLog.Infof("Görsel yüklendi: %s -> %s", file.Filename, parsed.Data.URL)
	return parsed.Data.URL, nil
}

func copyMultipartFile(writer *multipart.Writer, field string, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	part, err := writer.CreateFormFile(field, file.Filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, src)
	return err
}

var _ IUploadService = (*UploadService)(nil)
