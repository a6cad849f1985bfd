package migrations

import (
	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAdminsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating admins & admin_logs tables...")
	if err := db.AutoMigrate(&models.Admin{}, &models.AdminLog{}); err != nil {
		configslog.Log.Error("Failed to migrate admins & admin_logs tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Admins & admin_logs tables migrated successfully")
	return nil
}
