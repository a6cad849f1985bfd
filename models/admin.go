package models

// Admin is the owner account of one organization. OrgMail doubles as the
// login email and the tenant key.
type Admin struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	OrgMail      string `gorm:"type:varchar(191);uniqueIndex;not null" json:"orgmail"`
	StoreName    string `gorm:"type:varchar(150)" json:"store_name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// AdminLog is an audit entry written by settings changes.
type AdminLog struct {
	TenantModel
	Action   string `gorm:"type:varchar(50);not null;index" json:"action"`
	Category string `gorm:"type:varchar(50);index" json:"category"`
	Detail   string `gorm:"type:text" json:"detail"`
}

func (AdminLog) TableName() string { return "admin_logs" }

const (
	AdminActionCreate     = "create"
	AdminActionUpdate     = "update"
	AdminActionRemoveItem = "remove_item"
)
