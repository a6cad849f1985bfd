package models

// PolicyDetailsSetting holds the storefront legal pages.
type PolicyDetailsSetting struct {
	SettingsBase
	PrivacyPolicy   string `gorm:"size:1048576" json:"Privacy_Policy"`
	TermsConditions string `gorm:"size:1048576" json:"Terms_Conditions"`
	ReturnPolicy    string `gorm:"size:1048576" json:"Return_Policy"`
	ShippingPolicy  string `gorm:"size:1048576" json:"Shipping_Policy"`
	RefundPolicy    string `gorm:"size:1048576" json:"Refund_Policy"`
}

func (PolicyDetailsSetting) TableName() string { return "policy_details_settings" }

func (*PolicyDetailsSetting) Category() SettingsCategory { return CategoryPolicyDetails }

func (*PolicyDetailsSetting) AssetURLs() []string { return nil }
