package migrations

import (
	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUploadedAssetsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating uploaded_assets table...")
	if err := db.AutoMigrate(&models.UploadedAsset{}); err != nil {
		configslog.Log.Error("Failed to migrate uploaded_assets table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Uploaded_assets table migrated successfully")
	return nil
}
