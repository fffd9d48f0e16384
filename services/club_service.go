// services/club_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/listfield"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/scope"
	"panel.naal.org.tr/repositories"

	"go.uber.org/zap"
)

// ClubServiceError özel servis hataları
type ClubServiceError string

func (e ClubServiceError) Error() string { return string(e) }

const (
	ErrClubNotFound      ClubServiceError = "kulüp bulunamadı"
	ErrClubForbidden     ClubServiceError = "bu kulüp üzerinde işlem yetkiniz yok"
	ErrClubTitleRequired ClubServiceError = "kulüp adı zorunludur"
	ErrClubCodeRequired  ClubServiceError = "kulüp kodu zorunludur"
	ErrClubCodeTaken     ClubServiceError = "bu kulüp kodu zaten kayıtlı"
	ErrClubUpdateFailed  ClubServiceError = "kulüp güncellenemedi"
	ErrClubCreateFailed  ClubServiceError = "kulüp oluşturulamadı"
)

// ClubInput kulüp formundan gelen düzenlenebilir alanlar.
// Liste alanları formdan satır başına bir değer olarak gelir,
// veritabanına virgülle birleştirilerek yazılır.
type ClubInput struct {
	Title       string
	Description string
	Owners      []string
	Instagram   []string
	URLs        []string
	Logo        string
}

// IClubService kulüp işlemleri için arayüz.
type IClubService interface {
	GetByCode(ctx context.Context, sc scope.Scope, code string) (*models.Club, error)
	ListAll(ctx context.Context, sc scope.Scope, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ListCodes(ctx context.Context) ([]string, error)
	UpdateClub(ctx context.Context, sc scope.Scope, code string, input ClubInput, updatedBy uint) error
	CreateClub(ctx context.Context, sc scope.Scope, code string, input ClubInput) (*models.Club, error)
}

// ClubService IClubService arayüzünü uygular.
type ClubService struct {
	repo repositories.IClubRepository
}

// NewClubService yeni bir ClubService örneği oluşturur.
func NewClubService() IClubService {
	return &ClubService{repo: repositories.NewClubRepository()}
}

// GetByCode kulübü kodla getirir. Kulüp kullanıcısı yalnızca kendi
// kodunu sorgulayabilir; süper yönetici her kulübü görür.
func (s *ClubService) GetByCode(ctx context.Context, sc scope.Scope, code string) (*models.Club, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrClubNotFound
	}
	if !sc.Superadmin && code != sc.ClubCode {
		configslog.Log.Warn("Yetkisiz kulüp erişim denemesi", zap.String("istenen", code), zap.String("kapsam", sc.ClubCode))
		return nil, ErrClubForbidden
	}

	club, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClubNotFound
		}
		configslog.Log.Error("GetByCode: repo hatası", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return club, nil
}

// ListAll tüm kulüpleri sayfalı listeler (yalnızca süper yönetici).
func (s *ClubService) ListAll(ctx context.Context, sc scope.Scope, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if !sc.Superadmin {
		return nil, ErrClubForbidden
	}
	params.Validate()

	clubs, totalCount, err := s.repo.FindAll(ctx, params)
	if err != nil {
		configslog.Log.Error("Kulüp listesi alınırken hata", zap.Error(err))
		return nil, err
	}
	return queryparams.NewPaginatedResult(clubs, params, totalCount), nil
}

// ListCodes kulüp kodu seçim listesi için tüm kodları döndürür.
func (s *ClubService) ListCodes(ctx context.Context) ([]string, error) {
	codes, err := s.repo.FindAllCodes(ctx)
	if err != nil {
		configslog.Log.Error("Kulüp kodları alınırken hata", zap.Error(err))
		return nil, err
	}
	return codes, nil
}

// UpdateClub form girdisini tek satırlık kolonlara dönüştürüp kaydeder.
func (s *ClubService) UpdateClub(ctx context.Context, sc scope.Scope, code string, input ClubInput, updatedBy uint) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return ErrClubTitleRequired
	}

	club, err := s.GetByCode(ctx, sc, code)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"title":       input.Title,
		"description": strings.TrimSpace(input.Description),
		"owners":      listfield.Join(input.Owners),
		"instagram":   listfield.Join(input.Instagram),
		"urls":        listfield.Join(input.URLs),
		"logo":        strings.TrimSpace(input.Logo),
	}

	if err := s.repo.Update(ctx, club.ID, data, updatedBy); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClubNotFound
		}
		configslog.Log.Error("Kulüp güncellenirken hata", zap.String("code", code), zap.Error(err))
		return ErrClubUpdateFailed
	}

	configslog.SLog.Infof("Kulüp güncellendi: %s", code)
	return nil
}

// CreateClub yeni kulüp kaydı açar (yalnızca süper yönetici).
func (s *ClubService) CreateClub(ctx context.Context, sc scope.Scope, code string, input ClubInput) (*models.Club, error) {
	if !sc.Superadmin {
		return nil, ErrClubForbidden
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrClubCodeRequired
	}
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, ErrClubTitleRequired
	}

	if _, err := s.repo.FindByCode(ctx, code); err == nil {
		return nil, ErrClubCodeTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		configslog.Log.Error("CreateClub: kod kontrolü başarısız", zap.String("code", code), zap.Error(err))
		return nil, ErrClubCreateFailed
	}

	club := models.Club{
		Code:        code,
		Title:       input.Title,
		Description: strings.TrimSpace(input.Description),
		Owners:      listfield.Join(input.Owners),
		Instagram:   listfield.Join(input.Instagram),
		URLs:        listfield.Join(input.URLs),
		Logo:        strings.TrimSpace(input.Logo),
	}
	if err := s.repo.Create(ctx, &club); err != nil {
		configslog.Log.Error("Kulüp oluşturulurken hata", zap.String("code", code), zap.Error(err))
		return nil, ErrClubCreateFailed
	}

	configslog.SLog.Infof("Kulüp oluşturuldu: %s (%s)", club.Title, club.Code)
	return &club, nil
}

var _ IClubService = (*ClubService)(nil)
