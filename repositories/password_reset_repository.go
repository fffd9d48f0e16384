package repositories

import (
	"context"
	"errors"
	"time"

	"panel.naal.org.tr/configs/configsdatabase"
	"panel.naal.org.tr/models"

	"gorm.io/gorm"
)

// IPasswordResetRepository parola sıfırlama token işlemleri için arayüz.
type IPasswordResetRepository interface {
	Create(ctx context.Context, reset *models.PasswordReset) error
	FindValidByToken(ctx context.Context, token string) (*models.PasswordReset, error)
	MarkUsed(ctx context.Context, id uint) error
}

type PasswordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository yeni bir PasswordResetRepository örneği oluşturur.
func NewPasswordResetRepository() IPasswordResetRepository {
	return &PasswordResetRepository{db: configsdatabase.GetDB()}
}

func (r *PasswordResetRepository) Create(ctx context.Context, reset *models.PasswordReset) error {
	return r.db.WithContext(ctx).Create(reset).Error
}

// FindValidByToken kullanılmamış ve süresi geçmemiş token kaydını döndürür.
func (r *PasswordResetRepository) FindValidByToken(ctx context.Context, token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("token = ? AND used_at IS NULL AND expires_at > ?", token, time.Now()).
		First(&reset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id uint) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.PasswordReset{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", &now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IPasswordResetRepository = (*PasswordResetRepository)(nil)
