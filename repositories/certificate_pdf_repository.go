package repositories

import (
	"context"

	"panel.naal.org.tr/configs/configsdatabase"
	"panel.naal.org.tr/models"
	"panel.naal.org.tr/pkg/queryparams"
	"panel.naal.org.tr/pkg/scope"
	"panel.naal.org.tr/pkg/turkishsearch"

	"gorm.io/gorm"
)

// ICertificatePdfRepository PDF sertifika veritabanı işlemleri için arayüz.
type ICertificatePdfRepository interface {
	FindAllScoped(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) ([]models.CertificatePdf, int64, error)
	FindByIDScoped(ctx context.Context, id uint, sc scope.Scope, email string) (*models.CertificatePdf, error)
	Create(ctx context.Context, cert *models.CertificatePdf) error
	UpdateScoped(ctx context.Context, id uint, sc scope.Scope, email string, data map[string]interface{}, updatedBy uint) error
	DeleteScoped(ctx context.Context, id uint, sc scope.Scope, email string) error
}

type CertificatePdfRepository struct {
	base *BaseRepository[models.CertificatePdf]
	db   *gorm.DB
}

// NewCertificatePdfRepository yeni bir CertificatePdfRepository örneği oluşturur.
func NewCertificatePdfRepository() ICertificatePdfRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.CertificatePdf](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "date", "given", "cert_name"})
	return &CertificatePdfRepository{base: base, db: db}
}

func (r *CertificatePdfRepository) scopedQuery(ctx context.Context, sc scope.Scope, email string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.CertificatePdf{})
	if !sc.Superadmin {
		query = query.Where("uploader_mail = ?", email)
	}
	return query
}

func (r *CertificatePdfRepository) FindAllScoped(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) ([]models.CertificatePdf, int64, error) {
	var results []models.CertificatePdf
	var totalCount int64

	query := r.scopedQuery(ctx, sc, email)
	if params.Name != "" {
		frag, args := turkishsearch.AnyColumn(params.Name, "given", "cert_name", "uid")
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

func (r *CertificatePdfRepository) FindByIDScoped(ctx context.Context, id uint, sc scope.Scope, email string) (*models.CertificatePdf, error) {
	var cert models.CertificatePdf
	result := r.scopedQuery(ctx, sc, email).Where("id = ?", id).Limit(1).Find(&cert)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &cert, nil
}

func (r *CertificatePdfRepository) Create(ctx context.Context, cert *models.CertificatePdf) error {
	return r.base.Create(ctx, cert)
}

func (r *CertificatePdfRepository) UpdateScoped(ctx context.Context, id uint, sc scope.Scope, email string, data map[string]interface{}, updatedBy uint) error {
	if updatedBy != 0 {
		data["updated_by"] = updatedBy
	}
	result := r.scopedQuery(ctx, sc, email).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CertificatePdfRepository) DeleteScoped(ctx context.Context, id uint, sc scope.Scope, email string) error {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !sc.Superadmin {
		query = query.Where("uploader_mail = ?", email)
	}
	result := query.Delete(&models.CertificatePdf{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ICertificatePdfRepository = (*CertificatePdfRepository)(nil)
