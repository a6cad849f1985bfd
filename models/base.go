package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel is embedded by every table.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TenantModel is embedded by soft-deletable rows owned by one organization.
type TenantModel struct {
	BaseModel
	OrgMail   string         `gorm:"type:varchar(191);index;not null" json:"orgmail"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *TenantModel) GetID() uint { return m.ID }
func (m *TenantModel) SetID(id uint) { m.ID = id }
func (m *TenantModel) GetOrgMail() string { return m.OrgMail }
func (m *TenantModel) SetOrgMail(org string) { m.OrgMail = org }
func (m *TenantModel) GetCreatedAt() time.Time { return m.CreatedAt }
func (m *TenantModel) SetCreatedAt(t time.Time) { m.CreatedAt = t }

// TenantScoped is implemented by pointers to models embedding TenantModel.
type TenantScoped interface {
	GetID() uint
	SetID(uint)
	GetOrgMail() string
	SetOrgMail(string)
	GetCreatedAt() time.Time
	SetCreatedAt(time.Time)
}

// Validatable models check their own field constraints before writes.
type Validatable interface {
	Validate() error
}
