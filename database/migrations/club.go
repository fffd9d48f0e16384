package migrations

import (
	"panel.naal.org.tr/configs/configslog"
	"panel.naal.org.tr/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateClubsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating clubs table...")
	if err := db.AutoMigrate(&models.Club{}); err != nil {
		configslog.Log.Error("Failed to migrate clubs table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Clubs table migrated successfully")
	return nil
}
