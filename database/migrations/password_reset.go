package migrations

import (
	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigratePasswordResetsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating password_resets table...")
	if err := db.AutoMigrate(&models.PasswordReset{}); err != nil {
		configslog.Log.Error("Failed to migrate password_resets table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Password_resets table migrated successfully")
	return nil
}
