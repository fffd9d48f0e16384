package seeders

import (
	"errors"
	"strings"

	"panel.naal.org.tr/configs"
	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperadminUser süper yönetici hesabını oluşturur veya parolasını
// SUPERADMIN_INITIAL_PASSWORD ile günceller.
func SeedSuperadminUser(db *gorm.DB) error {
	email := strings.ToLower(configs.SuperadminEmail())
	password := configs.SuperadminInitialPassword()
	if password == "" {
		configslog.SLog.Warn("SUPERADMIN_INITIAL_PASSWORD tanımlı değil, süper yönetici seed adımı atlanıyor.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Süper yönetici parolası hash'lenemedi", zap.Error(err))
		return err
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Süper yönetici '%s' zaten mevcut, parola güncelleniyor.", email)
		return db.Model(&existing).Updates(map[string]interface{}{
			"password":  string(hash),
			"is_active": true,
		}).Error
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Süper yönetici kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	user := models.User{
		Email:    email,
		Name:     "Yönetici",
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Süper yönetici oluşturulamadı", zap.String("email", email), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Süper yönetici oluşturuldu: %s (ID: %d)", email, user.ID)
	return nil
}
