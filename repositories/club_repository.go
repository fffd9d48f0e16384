package repositories

import (
	"context"
	"errors"

	"panel.naal.org.tr/configs/configsdatabase"
	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/turkishsearch"

	"gorm.io/gorm"
)

// IClubRepository kulüp veritabanı işlemleri için arayüz.
type IClubRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Club, error)
	FindByID(ctx context.Context, id uint) (*models.Club, error)
	FindAll(ctx context.Context, params queryparams.ListParams) ([]models.Club, int64, error)
	FindAllCodes(ctx context.Context) ([]string, error)
	Create(ctx context.Context, club *models.Club) error
	Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error
}

type ClubRepository struct {
	base *BaseRepository[models.Club]
	db   *gorm.DB
}

// NewClubRepository yeni bir ClubRepository örneği oluşturur.
func NewClubRepository() IClubRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.Club](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "code", "title"})
	return &ClubRepository{base: base, db: db}
}

func (r *ClubRepository) FindByCode(ctx context.Context, code string) (*models.Club, error) {
	var club models.Club
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&club).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepository) FindByID(ctx context.Context, id uint) (*models.Club, error) {
	return r.base.FindByID(ctx, id)
}

// FindAll kulüpleri başlığa göre sıralı listeler (süper yönetici görünümü).
func (r *ClubRepository) FindAll(ctx context.Context, params queryparams.ListParams) ([]models.Club, int64, error) {
	var results []models.Club
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Club{})
	if params.Name != "" {
		frag, args := turkishsearch.AnyColumn(params.Name, "title", "code")
		query = query.Where(frag, args...)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	err := query.
		Order("title asc").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&results).Error
	return results, totalCount, err
}

// FindAllCodes URL yönetimindeki kulüp kodu dropdown'ı için kodları döndürür.
func (r *ClubRepository) FindAllCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&models.Club{}).
		Order("code asc").
		Pluck("code", &codes).Error
	return codes, err
}

func (r *ClubRepository) Create(ctx context.Context, club *models.Club) error {
	return r.base.Create(ctx, club)
}

func (r *ClubRepository) Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	return r.base.Update(ctx, id, data, updatedBy)
}

var _ IClubRepository = (*ClubRepository)(nil)
