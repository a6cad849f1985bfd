package migrations

import (
	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCommerceTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating commerce tables...")
	err := db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.Event{},
		&models.Review{},
		&models.Notification{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate commerce tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Commerce tables migrated successfully")
	return nil
}
