package migrations

import (
	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCertificatePdfsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cert_pdf table...")
	if err := db.AutoMigrate(&models.CertificatePdf{}); err != nil {
		configslog.Log.Error("Failed to migrate cert_pdf table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cert_pdf table migrated successfully")
	return nil
}
