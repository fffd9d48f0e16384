// services/certificate_pdf_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/certid"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/scope"
	"panel.naal.org.tr/repositories"

	"go.uber.org/zap"
)

// CertificatePdfServiceError özel servis hataları
type CertificatePdfServiceError string

func (e CertificatePdfServiceError) Error() string { return string(e) }

const (
	ErrPdfCertNotFound      CertificatePdfServiceError = "PDF sertifika bulunamadı"
	ErrPdfCertNameRequired  CertificatePdfServiceError = "sertifika adı zorunludur"
	ErrPdfCertGivenRequired CertificatePdfServiceError = "alıcı adı zorunludur"
	ErrPdfCertLinkRequired  CertificatePdfServiceError = "PDF bağlantısı zorunludur"
	ErrPdfCertCreateFailed  CertificatePdfServiceError = "PDF sertifika oluşturulamadı"
	ErrPdfCertUpdateFailed  CertificatePdfServiceError = "PDF sertifika güncellenemedi"
	ErrPdfCertDeleteFailed  CertificatePdfServiceError = "PDF sertifika silinemedi"
)

// CertificatePdfInput PDF sertifika formundan gelen alanlar.
type CertificatePdfInput struct {
	UID      string
	Given    string
	CertName string
	PdfLink  string
	From     string
	Date     string
}

// ICertificatePdfService PDF sertifika işlemleri için arayüz.
type ICertificatePdfService interface {
	List(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetByID(ctx context.Context, id uint, sc scope.Scope, email string) (*models.CertificatePdf, error)
	Create(ctx context.Context, sc scope.Scope, email string, input CertificatePdfInput, defaultFrom string) (*models.CertificatePdf, error)
	Update(ctx context.Context, id uint, sc scope.Scope, email string, input CertificatePdfInput, updatedBy uint) error
	Delete(ctx context.Context, id uint, sc scope.Scope, email string) error
}

// CertificatePdfService ICertificatePdfService arayüzünü uygular.
type CertificatePdfService struct {
	repo repositories.ICertificatePdfRepository
	now  func() time.Time
}

// NewCertificatePdfService yeni bir CertificatePdfService örneği oluşturur.
func NewCertificatePdfService() ICertificatePdfService {
	return &CertificatePdfService{
		repo: repositories.NewCertificatePdfRepository(),
		now:  time.Now,
	}
}

func (s *CertificatePdfService) List(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	certs, totalCount, err := s.repo.FindAllScoped(ctx, sc, email, params)
	if err != nil {
		configslog.Log.Error("PDF sertifika listesi alınırken hata", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return queryparams.NewPaginatedResult(certs, params, totalCount), nil
}

func (s *CertificatePdfService) GetByID(ctx context.Context, id uint, sc scope.Scope, email string) (*models.CertificatePdf, error) {
	cert, err := s.repo.FindByIDScoped(ctx, id, sc, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPdfCertNotFound
		}
		configslog.Log.Error("GetByID: repo hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return cert, nil
}

// Create yeni PDF sertifika kaydı açar. Boş uid için dijital
// sertifikadakiyle aynı kural ile kimlik üretilir; boş from alanı
// seçili kulübün adına düşer.
func (s *CertificatePdfService) Create(ctx context.Context, sc scope.Scope, email string, input CertificatePdfInput, defaultFrom string) (*models.CertificatePdf, error) {
	if err := validateCertificatePdfInput(&input); err != nil {
		return nil, err
	}

	from := strings.TrimSpace(input.From)
	if from == "" {
		from = strings.TrimSpace(defaultFrom)
	}
	uid := strings.TrimSpace(input.UID)
	if uid == "" {
		uid = certid.New(s.now())
	}

	cert := models.CertificatePdf{
		UID:          uid,
		Given:        input.Given,
		CertName:     input.CertName,
		PdfLink:      input.PdfLink,
		From:         from,
		UploaderMail: strings.ToLower(strings.TrimSpace(email)),
	}
	if date := strings.TrimSpace(input.Date); date != "" {
		cert.Date = &date
	}
	if err := s.repo.Create(ctx, &cert); err != nil {
		configslog.Log.Error("PDF sertifika oluşturulurken hata", zap.String("uid", uid), zap.Error(err))
		return nil, ErrPdfCertCreateFailed
	}

	configslog.SLog.Infof("PDF sertifika oluşturuldu: %s (%s)", cert.UID, cert.Given)
	return &cert, nil
}

func (s *CertificatePdfService) Update(ctx context.Context, id uint, sc scope.Scope, email string, input CertificatePdfInput, updatedBy uint) error {
	if err := validateCertificatePdfInput(&input); err != nil {
		return err
	}

	data := map[string]interface{}{
		"given":     input.Given,
		"cert_name": input.CertName,
		"pdf_link":  input.PdfLink,
		"from":      strings.TrimSpace(input.From),
	}
	if uid := strings.TrimSpace(input.UID); uid != "" {
		data["uid"] = uid
	}
	if date := strings.TrimSpace(input.Date); date != "" {
		data["date"] = date
	} else {
		data["date"] = nil
	}

	if err := s.repo.UpdateScoped(ctx, id, sc, email, data, updatedBy); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPdfCertNotFound
		}
		configslog.Log.Error("PDF sertifika güncellenirken hata", zap.Uint("id", id), zap.Error(err))
		return ErrPdfCertUpdateFailed
	}

	configslog.SLog.Infof("PDF sertifika güncellendi: ID %d", id)
	return nil
}

func (s *CertificatePdfService) Delete(ctx context.Context, id uint, sc scope.Scope, email string) error {
	if err := s.repo.DeleteScoped(ctx, id, sc, email); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPdfCertNotFound
		}
		configslog.Log.Error("PDF sertifika silinirken hata", zap.Uint("id", id), zap.Error(err))
		return ErrPdfCertDeleteFailed
	}
	configslog.SLog.Infof("PDF sertifika silindi: ID %d", id)
	return nil
}

func validateCertificatePdfInput(input *CertificatePdfInput) error {
	input.Given = strings.TrimSpace(input.Given)
	input.CertName = strings.TrimSpace(input.CertName)
	input.PdfLink = strings.TrimSpace(input.PdfLink)
	if input.CertName == "" {
		return ErrPdfCertNameRequired
	}
	if input.Given == "" {
		return ErrPdfCertGivenRequired
	}
	if input.PdfLink == "" {
		return ErrPdfCertLinkRequired
	}
	return nil
}

var _ ICertificatePdfService = (*CertificatePdfService)(nil)
