package repositories

import (
	"context"
	"errors"

	"panel.naal.org.tr/configs/configsdatabase"
	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/scope"
	"panel.naal.org.tr/pkg/turkishsearch"

	"gorm.io/gorm"
)

// IUrlRepository kısa URL veritabanı işlemleri için arayüz.
type IUrlRepository interface {
	FindAllScoped(ctx context.Context, sc scope.Scope, params queryparams.ListParams) ([]models.UrlRedirect, int64, error)
	FindByIDScoped(ctx context.Context, id uint, sc scope.Scope) (*models.UrlRedirect, error)
	FindByClubCodeAndPath(ctx context.Context, clubCode, path string) (*models.UrlRedirect, error)
	Create(ctx context.Context, url *models.UrlRedirect) error
	UpdateScoped(ctx context.Context, id uint, sc scope.Scope, data map[string]interface{}, updatedBy uint) error
	DeleteScoped(ctx context.Context, id uint, sc scope.Scope) error
}

type UrlRepository struct {
	base *BaseRepository[models.UrlRedirect]
	db   *gorm.DB
}

// NewUrlRepository yeni bir UrlRepository örneği oluşturur.
func NewUrlRepository() IUrlRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.UrlRedirect](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "club_code", "path"})
	return &UrlRepository{base: base, db: db}
}

func (r *UrlRepository) scopedQuery(ctx context.Context, sc scope.Scope) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.UrlRedirect{})
	if !sc.Superadmin {
		query = query.Where("club_code = ?", sc.ClubCode)
	}
	return query
}

func (r *UrlRepository) FindAllScoped(ctx context.Context, sc scope.Scope, params queryparams.ListParams) ([]models.UrlRedirect, int64, error) {
	var results []models.UrlRedirect
	var totalCount int64

	query := r.scopedQuery(ctx, sc)
	if params.Name != "" {
		frag, args := turkishsearch.AnyColumn(params.Name, "path", "redirect")
		query = query.Where(frag, args...)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return results, 0, nil
	}

	err := query.
		Order(r.base.OrderClause(params)).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&results).Error
	return results, totalCount, err
}

func (r *UrlRepository) FindByIDScoped(ctx context.Context, id uint, sc scope.Scope) (*models.UrlRedirect, error) {
	var url models.UrlRedirect
	result := r.scopedQuery(ctx, sc).Where("id = ?", id).Limit(1).Find(&url)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &url, nil
}

// FindByClubCodeAndPath public yönlendirme için kayıt arar (kapsam yok,
// istek anonimdir).
func (r *UrlRepository) FindByClubCodeAndPath(ctx context.Context, clubCode, path string) (*models.UrlRedirect, error) {
	var url models.UrlRedirect
	err := r.db.WithContext(ctx).
		Where("club_code = ? AND path = ?", clubCode, path).
		First(&url).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &url, nil
}

func (r *UrlRepository) Create(ctx context.Context, url *models.UrlRedirect) error {
	return r.base.Create(ctx, url)
}

func (r *UrlRepository) UpdateScoped(ctx context.Context, id uint, sc scope.Scope, data map[string]interface{}, updatedBy uint) error {
	if updatedBy != 0 {
		data["updated_by"] = updatedBy
	}
	result := r.scopedQuery(ctx, sc).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UrlRepository) DeleteScoped(ctx context.Context, id uint, sc scope.Scope) error {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !sc.Superadmin {
		query = query.Where("club_code = ?", sc.ClubCode)
	}
	result := query.Delete(&models.UrlRedirect{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IUrlRepository = (*UrlRepository)(nil)
