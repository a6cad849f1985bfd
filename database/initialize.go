package database

import (
	"errors"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/database/migrations"
	"shopconsole.io/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders inside one transaction.
func Initialize(db *gorm.DB, migrate bool, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do.")
		return nil
	}

	configslog.SLog.Info("Database initialization starting...")
	err := db.Transaction(func(tx *gorm.DB) (err error) {
		defer func() {
			if r := recover(); r != nil {
				configslog.Log.Error("Database initialization panicked", zap.Any("panic_info", r))
				err = errors.New("database initialization panicked")
			}
		}()

		if migrate {
			configslog.SLog.Info("Running migrations...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migration failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrations completed.")
		} else {
			configslog.SLog.Info("Migrate flag not set, skipping migrations.")
		}

		if seed {
			configslog.SLog.Info("Running seeders...")
			if err := CheckAndRunSeeders(tx); err != nil {
				configslog.Log.Error("Seeding failed", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeders completed.")
		} else {
			configslog.SLog.Info("Seed flag not set, skipping seeders.")
		}
		return nil
	})
	if err != nil {
		configslog.Log.Error("Database initialization rolled back", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Database initialization completed successfully")
	return nil
}

// RunMigrationsInOrder migrates every table. Admins come first since every
// other table is keyed by the admin's org_mail.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"admins", migrations.MigrateAdminsTables},
		{"settings", migrations.MigrateSettingsTables},
		{"uploaded assets", migrations.MigrateUploadedAssetsTable},
		{"commerce", migrations.MigrateCommerceTables},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> Running %s migrations...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migration step failed", zap.String("step", step.name), zap.Error(err))
			return err
		}
	}
	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Checking demo admin...")
	if err := seeders.SeedDemoAdmin(db); err != nil {
		configslog.Log.Error("Demo admin seed failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Seeding default policies...")
	if err := seeders.SeedDefaultPolicies(db); err != nil {
		configslog.Log.Error("Default policies seed failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info("All seeders checked/ran successfully.")
	return nil
}
