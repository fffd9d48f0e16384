package migrations

import (
	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUrlsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating url table...")
	if err := db.AutoMigrate(&models.UrlRedirect{}); err != nil {
		configslog.Log.Error("Failed to migrate url table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Url table migrated successfully")
	return nil
}
