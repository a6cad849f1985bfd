package models

import "gorm.io/datatypes"

// AboutUsSetting holds the about-us page content.
type AboutUsSetting struct {
	SettingsBase
	AboutTitle       string                           `gorm:"type:varchar(255)" json:"About_Title"`
	AboutDescription string                           `gorm:"type:text" json:"About_Description"`
	AboutImage       string                           `gorm:"type:varchar(500)" json:"About_Image"`
	Mission          string                           `gorm:"type:text" json:"Mission"`
	Vision           string                           `gorm:"type:text" json:"Vision"`
	Statistics       datatypes.JSONSlice[Statistic]   `json:"Statistics"`
	Features         datatypes.JSONSlice[Feature]     `json:"Features"`
	WorkingTitle     string                           `gorm:"type:varchar(255)" json:"Working_Title"`
	WorkingItems     datatypes.JSONSlice[WorkingItem] `json:"Working_Items"`
}

func (AboutUsSetting) TableName() string { return "about_us_settings" }

func (*AboutUsSetting) Category() SettingsCategory { return CategoryAboutUs }

func (s *AboutUsSetting) AssetURLs() []string {
	urls := []string{s.AboutImage}
	for _, item := range s.WorkingItems {
		urls = append(urls, item.Image)
	}
	return nonEmpty(urls...)
}
