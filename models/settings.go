package models

import "time"

// SettingsCategory names one configurable storefront content area.
type SettingsCategory string

const (
	CategoryHeaderFooter  SettingsCategory = "header-footer"
	CategoryAboutUs       SettingsCategory = "about-us"
	CategoryHomePage      SettingsCategory = "home-page"
	CategoryPolicyDetails SettingsCategory = "policy-details"
)

// SettingsBase is embedded by every settings record. The unique index on
// org_mail keeps one row per tenant and category.
type SettingsBase struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrgMail   string    `gorm:"type:varchar(191);uniqueIndex;not null" json:"orgmail"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *SettingsBase) Tenant() string { return s.OrgMail }

func (s *SettingsBase) SetTenant(orgMail string) { s.OrgMail = orgMail }

// ResetKeys clears the primary key and timestamps so the row can be written
// through the org_mail conflict target. created_at of an existing row is
// never overwritten by the upsert.
func (s *SettingsBase) ResetKeys() {
	s.ID = 0
	s.CreatedAt = time.Time{}
	s.UpdatedAt = time.Time{}
}

// SettingsRecord is implemented by pointers to the four settings models.
type SettingsRecord interface {
	Tenant() string
	SetTenant(orgMail string)
	ResetKeys()
	Category() SettingsCategory
	// AssetURLs lists every uploaded file the record references.
	AssetURLs() []string
}

func nonEmpty(urls ...string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
