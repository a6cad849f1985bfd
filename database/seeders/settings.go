package seeders

import (
	"errors"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDefaultPolicies gives every admin without policy pages a starter set so
// the storefront never links to empty legal pages.
func SeedDefaultPolicies(db *gorm.DB) error {
	var admins []models.Admin
	if err := db.Find(&admins).Error; err != nil {
		return err
	}

	var createdCount int64
	errorOccurred := false
	for _, admin := range admins {
		var existing models.PolicyDetailsSetting
		result := db.Where("org_mail = ?", admin.OrgMail).First(&existing)
		if result.Error == nil {
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Database error while checking policies", zap.String("org_mail", admin.OrgMail), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		policy := models.PolicyDetailsSetting{
			PrivacyPolicy:   "We only use your personal data to process your orders.",
			TermsConditions: "By placing an order you agree to these terms.",
		}
		policy.SetTenant(admin.OrgMail)
		if err := db.Create(&policy).Error; err != nil {
			configslog.Log.Error("Default policies could not be created", zap.String("org_mail", admin.OrgMail), zap.Error(err))
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("Default policies seeded for %d admin(s).", createdCount)
	}
	if errorOccurred {
		return errors.New("at least one default policy could not be seeded")
	}
	return nil
}
