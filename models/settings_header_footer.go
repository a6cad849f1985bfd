package models

import "gorm.io/datatypes"

// HeaderFooterSetting holds the storefront navbar and footer.
type HeaderFooterSetting struct {
	SettingsBase
	NavbarLogo        string                            `gorm:"type:varchar(500)" json:"Navbar_Logo"`
	NavIcons          datatypes.JSONSlice[NavIcon]      `json:"Nav_Icons"`
	CountryBlocks     datatypes.JSONSlice[CountryBlock] `json:"Country_Blocks"`
	FooterLinks       datatypes.JSONSlice[FooterLink]   `json:"Footer_Links"`
	SocialIcons       datatypes.JSONSlice[SocialIcon]   `json:"Social_Icons"`
	FooterDescription string                            `gorm:"type:text" json:"Footer_Description"`
	FooterCopyright   string                            `gorm:"type:varchar(255)" json:"Footer_Copyright"`
}

func (HeaderFooterSetting) TableName() string { return "header_footer_settings" }

func (*HeaderFooterSetting) Category() SettingsCategory { return CategoryHeaderFooter }

func (s *HeaderFooterSetting) AssetURLs() []string {
	urls := []string{s.NavbarLogo}
	for _, icon := range s.NavIcons {
		urls = append(urls, icon.IconImageURL)
	}
	return nonEmpty(urls...)
}
