package migrations

import (
	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSettingsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating settings tables...")
	err := db.AutoMigrate(
		&models.HeaderFooterSetting{},
		&models.AboutUsSetting{},
		&models.HomePageSetting{},
		&models.PolicyDetailsSetting{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate settings tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Settings tables migrated successfully")
	return nil
}
