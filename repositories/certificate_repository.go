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

// ICertificateRepository dijital sertifika veritabanı işlemleri için arayüz.
// Tüm okuma/yazma metodları çözümlenmiş kapsamı parametre olarak alır;
// kapsam filtresi WHERE koşuluna işlenir, handler'da tekrar türetilmez.
type ICertificateRepository interface {
	FindAllScoped(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) ([]models.Certificate, int64, error)
	FindByIDScoped(ctx context.Context, id uint, sc scope.Scope, email string) (*models.Certificate, error)
	Create(ctx context.Context, cert *models.Certificate) error
	UpdateScoped(ctx context.Context, id uint, sc scope.Scope, email string, data map[string]interface{}, updatedBy uint) error
	DeleteScoped(ctx context.Context, id uint, sc scope.Scope, email string) error
}

type CertificateRepository struct {
	base *BaseRepository[models.Certificate]
	db   *gorm.DB
}

// NewCertificateRepository yeni bir CertificateRepository örneği oluşturur.
func NewCertificateRepository() ICertificateRepository {
	db := configsdatabase.GetDB()
	base := NewBaseRepository[models.Certificate](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "date", "given", "head"})
	return &CertificateRepository{base: base, db: db}
}

// scopedQuery kapsam filtresini uygular: süper yönetici tüm satırları görür,
// kulüp kullanıcısı yalnızca kendi yüklediklerini.
func (r *CertificateRepository) scopedQuery(ctx context.Context, sc scope.Scope, email string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Certificate{})
	if !sc.Superadmin {
		query = query.Where("uploader_mail = ?", email)
	}
	return query
}

func (r *CertificateRepository) FindAllScoped(ctx context.Context, sc scope.Scope, email string, params queryparams.ListParams) ([]models.Certificate, int64, error) {
	var results []models.Certificate
	var totalCount int64

	query := r.scopedQuery(ctx, sc, email)
	if params.Name != "" {
		frag, args := turkishsearch.AnyColumn(params.Name, "given", "head", "file_id")
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

func (r *CertificateRepository) FindByIDScoped(ctx context.Context, id uint, sc scope.Scope, email string) (*models.Certificate, error) {
	var cert models.Certificate
	result := r.scopedQuery(ctx, sc, email).Where("id = ?", id).Limit(1).Find(&cert)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &cert, nil
}

func (r *CertificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	return r.base.Create(ctx, cert)
}

// UpdateScoped kapsam dışı veya olmayan id için ErrNotFound döndürür;
// sessiz sıfır satırlık güncelleme yoktur.
func (r *CertificateRepository) UpdateScoped(ctx context.Context, id uint, sc scope.Scope, email string, data map[string]interface{}, updatedBy uint) error {
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

func (r *CertificateRepository) DeleteScoped(ctx context.Context, id uint, sc scope.Scope, email string) error {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !sc.Superadmin {
		query = query.Where("uploader_mail = ?", email)
	}
	result := query.Delete(&models.Certificate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ICertificateRepository = (*CertificateRepository)(nil)
