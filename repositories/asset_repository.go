package repositories

import (
	"context"
	"time"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAssetRepository tracks uploaded files through their lifecycle.
type IAssetRepository interface {
	Create(ctx context.Context, asset *models.UploadedAsset) error
	// SetState moves the tenant's assets with the given URLs to state and
	// returns how many rows changed.
	SetState(ctx context.Context, orgMail string, urls []string, state models.AssetState) (int64, error)
	FindByURLs(ctx context.Context, orgMail string, urls []string) ([]models.UploadedAsset, error)
	// FindSweepable lists orphaned assets and pending ones created before
	// pendingBefore, oldest first.
	FindSweepable(ctx context.Context, pendingBefore time.Time, limit int) ([]models.UploadedAsset, error)
	DeleteByIDs(ctx context.Context, ids []uint) error
}

type AssetRepository struct {
	db *gorm.DB
}

var _ IAssetRepository = (*AssetRepository)(nil)

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, asset *models.UploadedAsset) error {
	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		configslog.Log.Error("Asset record could not be created",
			zap.String("org_mail", asset.OrgMail), zap.String("key", asset.Key), zap.Error(err))
		return err
	}
	return nil
}

func (r *AssetRepository) SetState(ctx context.Context, orgMail string, urls []string, state models.AssetState) (int64, error) {
	if len(urls) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&models.UploadedAsset{}).
		Where("org_mail = ? AND url IN ? AND state <> ?", orgMail, urls, state).
		Update("state", state)
	if result.Error != nil {
		configslog.Log.Error("Asset state update failed",
			zap.String("org_mail", orgMail), zap.String("state", string(state)), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *AssetRepository) FindByURLs(ctx context.Context, orgMail string, urls []string) ([]models.UploadedAsset, error) {
	var assets []models.UploadedAsset
	if len(urls) == 0 {
		return assets, nil
	}
	err := r.db.WithContext(ctx).Where("org_mail = ? AND url IN ?", orgMail, urls).Find(&assets).Error
	return assets, err
}

func (r *AssetRepository) FindSweepable(ctx context.Context, pendingBefore time.Time, limit int) ([]models.UploadedAsset, error) {
	var assets []models.UploadedAsset
	err := r.db.WithContext(ctx).
		Where("state = ? OR (state = ? AND created_at < ?)", models.AssetOrphaned, models.AssetPending, pendingBefore).
		Order("created_at asc").
		Limit(limit).
		Find(&assets).Error
	return assets, err
}

func (r *AssetRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.UploadedAsset{}).Error
}
