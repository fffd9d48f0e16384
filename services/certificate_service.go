// services/certificate_service.go
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

// CertificateServiceError özel servis hataları
type CertificateServiceError string

func (e CertificateServiceError) Error() string { return string(e) }

const (
	ErrCertNotFound      CertificateServiceError = "sertifika bulunamadı"
	ErrCertHeadRequired  CertificateServiceError = "sertifika başlığı zorunludur"
	ErrCertGivenRequired CertificateServiceError = "alıcı adı zorunludur"
	ErrCertDateRequired  CertificateServiceError = "sertifika tarihi zorunludur"
	ErrCertCreateFailed  CertificateServiceError = "sertifika oluşturulamadı"
	ErrCertUpdateFailed  CertificateServiceError = "sertifika güncellenemedi"
	ErrCertDeleteFailed  CertificateServiceError = "sertifika silinemedi"
)

// CertificateInput dijital sertifika formundan gelen alanlar.
type CertificateInput struct {
	Creator string
	Head    string
	Given   string
	Date    string
	FileID  string
}

// ICertificateService dijital sertifika işlemleri için arayüz.
type ICertificateService interface {
	List(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetByID(ctx context.Context, id uint, sc scope.Scope, email string) (*models.Certificate, error)
	Create(ctx context.Context, sc scope.Scope, email string, input CertificateInput, defaultCreator string) (*models.Certificate, error)
	Update(ctx context.Context, id uint, sc scope.Scope, email string, input CertificateInput, updatedBy uint) error
	Delete(ctx context.Context, id uint, sc scope.Scope, email string) error
}

// CertificateService ICertificateService arayüzünü uygular.
type CertificateService struct {
	repo repositories.ICertificateRepository
	now  func() time.Time
}

// NewCertificateService yeni bir CertificateService örneği oluşturur.
func NewCertificateService() ICertificateService {
	return &CertificateService{
		repo: repositories.NewCertificateRepository(),
		now:  time.Now,
	}
}

func (s *CertificateService) List(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	certs, totalCount, err := s.repo.FindAllScoped(ctx, sc, email, params)
	if err != nil {
		configslog.Log.Error("Sertifika listesi alınırken hata", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return queryparams.NewPaginatedResult(certs, params, totalCount), nil
}

func (s *CertificateService) GetByID(ctx context.Context, id uint, sc scope.Scope, email string) (*models.Certificate, error) {
	cert, err := s.repo.FindByIDScoped(ctx, id, sc, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCertNotFound
		}
		configslog.Log.Error("GetByID: repo hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return cert, nil
}

// Create yeni dijital sertifika kaydı açar. Boş file_id için
// CERT-YYYYMMDD-###### biçiminde kimlik üretilir; boş creator alanı
// seçili kulübün adına düşer.
func (s *CertificateService) Create(ctx context.Context, sc scope.Scope, email string, input CertificateInput, defaultCreator string) (*models.Certificate, error) {
	if err := validateCertificateInput(&input); err != nil {
		return nil, err
	}

	creator := strings.TrimSpace(input.Creator)
	if creator == "" {
		creator = strings.TrimSpace(defaultCreator)
	}
	fileID := strings.TrimSpace(input.FileID)
	if fileID == "" {
		fileID = certid.New(s.now())
	}

	cert := models.Certificate{
		Creator:      creator,
		Head:         input.Head,
		Given:        input.Given,
		Date:         input.Date,
		FileID:       fileID,
		UploaderMail: strings.ToLower(strings.TrimSpace(email)),
	}
	if err := s.repo.Create(ctx, &cert); err != nil {
		configslog.Log.Error("Sertifika oluşturulurken hata", zap.String("file_id", fileID), zap.Error(err))
		return nil, ErrCertCreateFailed
	}

	configslog.SLog.Infof("Sertifika oluşturuldu: %s (%s)", cert.FileID, cert.Given)
	return &cert, nil
}

func (s *CertificateService) Update(ctx context.Context, id uint, sc scope.Scope, email string, input CertificateInput, updatedBy uint) error {
	if err := validateCertificateInput(&input); err != nil {
		return err
	}

	data := map[string]interface{}{
		"creator": strings.TrimSpace(input.Creator),
		"head":    input.Head,
		"given":   input.Given,
		"date":    input.Date,
	}
	if fileID := strings.TrimSpace(input.FileID); fileID != "" {
		data["file_id"] = fileID
	}

	if err := s.repo.UpdateScoped(ctx, id, sc, email, data, updatedBy); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCertNotFound
		}
		configslog.Log.Error("Sertifika güncellenirken hata", zap.Uint("id", id), zap.Error(err))
		return ErrCertUpdateFailed
	}

	configslog.SLog.Infof("Sertifika güncellendi: ID %d", id)
	return nil
}

func (s *CertificateService) Delete(ctx context.Context, id uint, sc scope.Scope, email string) error {
	if err := s.repo.DeleteScoped(ctx, id, sc, email); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCertNotFound
		}
		configslog.Log.Error("Sertifika silinirken hata", zap.Uint("id", id), zap.Error(err))
		return ErrCertDeleteFailed
	}
	configslog.SLog.Infof("Sertifika silindi: ID %d", id)
	return nil
}

func validateCertificateInput(input *CertificateInput) error {
	input.Head = strings.TrimSpace(input.Head)
	input.Given = strings.TrimSpace(input.Given)
	input.Date = strings.TrimSpace(input.Date)
	if input.Head == "" {
		return ErrCertHeadRequired
	}
	if input.Given == "" {
		return ErrCertGivenRequired
	}
	if input.Date == "" {
		return ErrCertDateRequired
	}
	return nil
}

var _ ICertificateService = (*CertificateService)(nil)
