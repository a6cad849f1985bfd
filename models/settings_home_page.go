package models

import "gorm.io/datatypes"

const (
	MinHeroImages = 3
	MaxHeroImages = 10
)

// HomePageSetting holds the home page hero carousel and featured section.
type HomePageSetting struct {
	SettingsBase
	HeroTitle        string                      `gorm:"type:varchar(255)" json:"Hero_Title"`
	HeroSubtitle     string                      `gorm:"type:text" json:"Hero_Subtitle"`
	HeroButtonText   string                      `gorm:"type:varchar(100)" json:"Hero_Button_Text"`
	HeroButtonLink   string                      `gorm:"type:varchar(500)" json:"Hero_Button_Link"`
	HeroImages       datatypes.JSONSlice[string] `json:"Hero_Images"`
	FeaturedTitle    string                      `gorm:"type:varchar(255)" json:"Featured_Title"`
	FeaturedSubtitle string                      `gorm:"type:text" json:"Featured_Subtitle"`
}

func (HomePageSetting) TableName() string { return "home_page_settings" }

func (*HomePageSetting) Category() SettingsCategory { return CategoryHomePage }

func (s *HomePageSetting) AssetURLs() []string {
	return nonEmpty(s.HeroImages...)
}
