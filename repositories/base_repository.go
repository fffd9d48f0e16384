package repositories

import (
	"context"
	"errors"
	"strings"

	"panel.naal.org.tr/pkg/queryparams"

	"gorm.io/gorm"
)

// ErrNotFound id veya kapsam filtresine uyan satır bulunamadığında döner.
// "Sıfır satır güncellendi" ile "başarılı" ayrımı bu hata ile yapılır.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm entity repository'lerinin paylaştığı temel işlemler.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, model *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error
	Delete(ctx context.Context, id uint) error
	GetCount(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository IBaseRepository'nin GORM implementasyonu.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository yeni bir BaseRepository örneği oluşturur.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]bool{"id": true, "created_at": true},
	}
}

// SetAllowedSortColumns sıralamaya izin verilen sütunları belirler
// (SQL injection'a karşı allowlist).
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]bool, len(columns))
	for _, col := range columns {
		allowed[col] = true
	}
	r.allowedSortColumns = allowed
}

// OrderClause params'a göre güvenli ORDER BY ifadesi üretir.
func (r *BaseRepository[T]) OrderClause(params queryparams.ListParams) string {
	column := "created_at"
	if r.allowedSortColumns[params.SortBy] {
		column = params.SortBy
	}
	direction := strings.ToLower(params.OrderBy)
	if direction != "asc" && direction != "desc" {
		direction = queryparams.DefaultOrderBy
	}
	return column + " " + direction
}

func (r *BaseRepository[T]) Create(ctx context.Context, model *T) error {
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var model T
	err := r.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// Update alan haritasını uygular. Eşleşen satır yoksa ErrNotFound döner.
func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}, updatedBy uint) error {
	if updatedBy != 0 {
		data["updated_by"] = updatedBy
	}
	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete kaydı kalıcı olarak siler. Eşleşen satır yoksa ErrNotFound döner.
func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) GetCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
