package repositories

import (
	"context"
	"errors"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsModel is satisfied by pointers to the settings records.
type SettingsModel[T any] interface {
	*T
	models.SettingsRecord
}

// ISettingsRepository reads and writes the single settings row of a tenant.
type ISettingsRepository[T any] interface {
	FindByOrgMail(ctx context.Context, orgMail string) (*T, error)
	Upsert(ctx context.Context, record *T) error
	Exists(ctx context.Context, orgMail string) (bool, error)
}

type SettingsRepository[T any, PT SettingsModel[T]] struct {
	db *gorm.DB
}

var _ ISettingsRepository[models.HomePageSetting] = (*SettingsRepository[models.HomePageSetting, *models.HomePageSetting])(nil)

func NewSettingsRepository[T any, PT SettingsModel[T]](db *gorm.DB) *SettingsRepository[T, PT] {
	return &SettingsRepository[T, PT]{db: db}
}

func (r *SettingsRepository[T, PT]) FindByOrgMail(ctx context.Context, orgMail string) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).Where("org_mail = ?", orgMail).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("Settings lookup failed",
			zap.String("org_mail", orgMail), zap.String("category", string(PT(&record).Category())), zap.Error(err))
		return nil, err
	}
	return &record, nil
}

// Upsert inserts the record or, when the tenant already has a row, overwrites
// it in the same statement (ON CONFLICT / ON DUPLICATE KEY UPDATE). The keys
// of record are reset first, so a copy of a stored row goes through the
// org_mail conflict target. The caller re-reads the row afterwards; the
// primary key written back into record is not reliable on MySQL updates.
func (r *SettingsRepository[T, PT]) Upsert(ctx context.Context, record *T) error {
	p := PT(record)
	p.ResetKeys()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "org_mail"}},
		UpdateAll: true,
	}).Create(record).Error
	if err != nil {
		configslog.Log.Error("Settings upsert failed",
			zap.String("org_mail", p.Tenant()), zap.String("category", string(p.Category())), zap.Error(err))
		return err
	}
	return nil
}

func (r *SettingsRepository[T, PT]) Exists(ctx context.Context, orgMail string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("org_mail = ?", orgMail).Count(&count).Error
	return count > 0, err
}
