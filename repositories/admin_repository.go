package repositories

import (
	"context"
	"errors"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByOrgMail(ctx context.Context, orgMail string) (*models.Admin, error)
	FindByID(ctx context.Context, id uint) (*models.Admin, error)
}

type AdminRepository struct {
	db *gorm.DB
}

var _ IAdminRepository = (*AdminRepository)(nil)

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		configslog.Log.Error("Admin could not be created", zap.String("org_mail", admin.OrgMail), zap.Error(err))
		return err
	}
	return nil
}

func (r *AdminRepository) FindByOrgMail(ctx context.Context, orgMail string) (*models.Admin, error) {
	return r.first(ctx, "org_mail = ?", orgMail)
}

func (r *AdminRepository) FindByID(ctx context.Context, id uint) (*models.Admin, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AdminRepository) first(ctx context.Context, query string, arg any) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where(query, arg).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("Admin lookup failed", zap.Any("key", arg), zap.Error(err))
		return nil, err
	}
	return &admin, nil
}
