// services/url_service.go
package services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/scope"
	"panel.naal.org.tr/repositories"

	"go.uber.org/zap"
)

// UrlServiceError özel servis hataları
type UrlServiceError string

func (e UrlServiceError) Error() string { return string(e) }

const (
	ErrUrlNotFound        UrlServiceError = "kısa URL bulunamadı"
	ErrUrlForbidden       UrlServiceError = "bu kayıt üzerinde işlem yetkiniz yok"
	ErrUrlPathRequired    UrlServiceError = "kısa yol zorunludur"
	ErrUrlInvalidRedirect UrlServiceError = "hedef adres http veya https ile başlayan tam bir URL olmalıdır"
	ErrUrlClubRequired    UrlServiceError = "kulüp kodu zorunludur"
	ErrUrlCreateFailed    UrlServiceError = "kısa URL oluşturulamadı"
	ErrUrlUpdateFailed    UrlServiceError = "kısa URL güncellenemedi"
	ErrUrlDeleteFailed    UrlServiceError = "kısa URL silinemedi"
)

// UrlInput kısa URL formundan gelen alanlar. ClubCode yalnızca süper
// yönetici tarafından seçilebilir; kulüp kullanıcısında kapsam kodu
// kullanılır.
type UrlInput struct {
	ClubCode string
	Path     string
	Redirect string
}

// IUrlService kısa URL işlemleri için arayüz.
type IUrlService interface {
	List(ctx context.Context, sc scope.Scope, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetByID(ctx context.Context, id uint, sc scope.Scope) (*models.UrlRedirect, error)
	Create(ctx context.Context, sc scope.Scope, input UrlInput) (*models.UrlRedirect, error)
	Update(ctx context.Context, id uint, sc scope.Scope, input UrlInput, updatedBy uint) error
	Delete(ctx context.Context, id uint, sc scope.Scope) error
	ResolveRedirect(ctx context.Context, clubCode, path string) (string, error)
}

// UrlService IUrlService arayüzünü uygular.
type UrlService struct {
	repo repositories.IUrlRepository
}

// NewUrlService yeni bir UrlService örneği oluşturur.
func NewUrlService() IUrlService {
	return &UrlService{repo: repositories.NewUrlRepository()}
}

func (s *UrlService) List(ctx context.Context, sc scope.Scope, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	urls, totalCount, err := s.repo.FindAllScoped(ctx, sc, params)
	if err != nil {
		configslog.Log.Error("Kısa URL listesi alınırken hata", zap.Error(err))
		return nil, err
	}
	return queryparams.NewPaginatedResult(urls, params, totalCount), nil
}

func (s *UrlService) GetByID(ctx context.Context, id uint, sc scope.Scope) (*models.UrlRedirect, error) {
	record, err := s.repo.FindByIDScoped(ctx, id, sc)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUrlNotFound
		}
		configslog.Log.Error("GetByID: repo hatası", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (s *UrlService) Create(ctx context.Context, sc scope.Scope, input UrlInput) (*models.UrlRedirect, error) {
	clubCode, err := resolveURLClubCode(sc, input.ClubCode)
	if err != nil {
		return nil, err
	}
	path, err := normalizeURLPath(input.Path)
	if err != nil {
		return nil, err
	}
	redirect, err := validateRedirectTarget(input.Redirect)
	if err != nil {
		return nil, err
	}

	record := models.UrlRedirect{
		ClubCode: clubCode,
		Path:     path,
		Redirect: redirect,
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		configslog.Log.Error("Kısa URL oluşturulurken hata", zap.String("club_code", clubCode), zap.String("path", path), zap.Error(err))
		return nil, ErrUrlCreateFailed
	}

	configslog.SLog.Infof("Kısa URL oluşturuldu: %s/%s -> %s", clubCode, path, redirect)
	return &record, nil
}

func (s *UrlService) Update(ctx context.Context, id uint, sc scope.Scope, input UrlInput, updatedBy uint) error {
	path, err := normalizeURLPath(input.Path)
	if err != nil {
		return err
	}
	redirect, err := validateRedirectTarget(input.Redirect)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"path":     path,
		"redirect": redirect,
	}
	if sc.Superadmin {
		if clubCode := strings.ToLower(strings.TrimSpace(input.ClubCode)); clubCode != "" {
			data["club_code"] = clubCode
		}
	}

	if err := s.repo.UpdateScoped(ctx, id, sc, data, updatedBy); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUrlNotFound
		}
		configslog.Log.Error("Kısa URL güncellenirken hata", zap.Uint("id", id), zap.Error(err))
		return ErrUrlUpdateFailed
	}

	configslog.SLog.Infof("Kısa URL güncellendi: ID %d", id)
	return nil
}

func (s *UrlService) Delete(ctx context.Context, id uint, sc scope.Scope) error {
	if err := s.repo.DeleteScoped(ctx, id, sc); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUrlNotFound
		}
		configslog.Log.Error("Kısa URL silinirken hata", zap.Uint("id", id), zap.Error(err))
		return ErrUrlDeleteFailed
	}
	configslog.SLog.Infof("Kısa URL silindi: ID %d", id)
	return nil
}

// ResolveRedirect public istekler için hedef adresi döndürür.
func (s *UrlService) ResolveRedirect(ctx context.Context, clubCode, path string) (string, error) {
	clubCode = strings.ToLower(strings.TrimSpace(clubCode))
	path = strings.Trim(strings.TrimSpace(path), "/")
	if clubCode == "" || path == "" {
		return "", ErrUrlNotFound
	}

	record, err := s.repo.FindByClubCodeAndPath(ctx, clubCode, path)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrUrlNotFound
		}
		configslog.Log.Error("ResolveRedirect: repo hatası", zap.String("club_code", clubCode), zap.String("path", path), zap.Error(err))
		return "", err
	}
	return record.Redirect, nil
}

func resolveURLClubCode(sc scope.Scope, formCode string) (string, error) {
	if !sc.Superadmin {
		return sc.ClubCode, nil
	}
	code := strings.ToLower(strings.TrimSpace(formCode))
	if code == "" {
		return "", ErrUrlClubRequired
	}
	return code, nil
}

func normalizeURLPath(path string) (string, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return "", ErrUrlPathRequired
	}
	return path, nil
}

// validateRedirectTarget hedefin mutlak bir http(s) URL'si olduğunu
// doğrular; ftp gibi şemalar reddedilir.
func validateRedirectTarget(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrUrlInvalidRedirect
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", ErrUrlInvalidRedirect
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", ErrUrlInvalidRedirect
	}
	return raw, nil
}

var _ IUrlService = (*UrlService)(nil)
