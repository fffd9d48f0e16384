package migrations

import (
	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCertificatesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cert table...")
	if err := db.AutoMigrate(&models.Certificate{}); err != nil {
		configslog.Log.Error("Failed to migrate cert table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cert table migrated successfully")
	return nil
}
