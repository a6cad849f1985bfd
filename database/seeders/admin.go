package seeders

import (
	"errors"
	"os"
	"strings"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoAdmin creates the admin named by SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD when both are set and the admin does not exist yet.
func SeedDemoAdmin(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		configslog.SLog.Info("SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set, skipping demo admin.")
		return nil
	}

	var existing models.Admin
	result := db.Where("org_mail = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("Admin '%s' already exists, skipping.", email)
		return nil
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Database error while checking demo admin", zap.String("org_mail", email), zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.Admin{
		Name:         "Demo Admin",
		OrgMail:      email,
		StoreName:    "Demo Store",
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Demo admin could not be created", zap.String("org_mail", email), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Demo admin '%s' created (ID: %d).", email, admin.ID)
	return nil
}
