package services

import (
	"context"
	"mime/multipart"
	"time"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/metrics"
	"shopconsole.io/pkg/storage"
	"shopconsole.io/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sweepBatchSize = 100

// AssetService stores uploads and moves them through
// pending -> committed -> orphaned -> deleted.
type AssetService struct {
	db       *gorm.DB
	backend  storage.Backend
	maxBytes int64
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewAssetService(db *gorm.DB, backend storage.Backend, maxBytes int64, m *metrics.Metrics) *AssetService {
	return &AssetService{db: db, backend: backend, maxBytes: maxBytes, metrics: m, now: time.Now}
}

// Stage validates and stores one uploaded file and records it as pending.
func (s *AssetService) Stage(ctx context.Context, orgMail, field string, fh *multipart.FileHeader) (string, error) {
	if err := storage.CheckUpload(field, fh.Filename, fh.Size, s.maxBytes); err != nil {
		return "", err
	}
	src, err := fh.Open()
	if err != nil {
		return "", apperrors.Validation("%s: unreadable upload", field)
	}
	defer src.Close()

	key := storage.NewKey(fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	url, err := s.backend.Save(ctx, key, src, fh.Size, contentType)
	if err != nil {
		configslog.Log.Error("Upload could not be stored", zap.String("org_mail", orgMail), zap.String("field", field), zap.Error(err))
		return "", apperrors.Internal("upload could not be stored", err)
	}

	asset := &models.UploadedAsset{
		OrgMail:     orgMail,
		Key:         key,
		URL:         url,
		Field:       field,
		ContentType: contentType,
		Size:        fh.Size,
		State:       models.AssetPending,
	}
	if err := repositories.NewAssetRepository(s.db).Create(ctx, asset); err != nil {
		if delErr := s.backend.Delete(ctx, key); delErr != nil {
			configslog.Log.Warn("Stored upload could not be removed after record failure", zap.String("key", key), zap.Error(delErr))
		}
		return "", apperrors.Internal("upload could not be recorded", err)
	}
	s.metrics.ObserveAsset(string(models.AssetPending), 1)
	return url, nil
}

// Discard deletes staged uploads of a request that did not complete.
// Assets already committed by a concurrent request are left alone.
func (s *AssetService) Discard(ctx context.Context, orgMail string, urls []string) {
	if len(urls) == 0 {
		return
	}
	assets, err := repositories.NewAssetRepository(s.db).FindByURLs(ctx, orgMail, urls)
	if err != nil {
		configslog.Log.Warn("Staged uploads could not be looked up for discard", zap.String("org_mail", orgMail), zap.Error(err))
		return
	}
	pending := assets[:0]
	for _, a := range assets {
		if a.State == models.AssetPending {
			pending = append(pending, a)
		}
	}
	s.remove(ctx, pending)
}

// claim fails unless every url is a pending upload of orgMail. Committed
// files belong to another field and anything else was never uploaded here.
func (s *AssetService) claim(ctx context.Context, tx *gorm.DB, orgMail string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	assets, err := repositories.NewAssetRepository(tx).FindByURLs(ctx, orgMail, urls)
	if err != nil {
		return err
	}
	pending := make(map[string]bool, len(assets))
	for _, a := range assets {
		if a.State == models.AssetPending {
			pending[a.URL] = true
		}
	}
	for _, url := range urls {
		if !pending[url] {
			return apperrors.Validation("file %q is not an upload of this request", url)
		}
	}
	return nil
}

// commit runs inside the settings transaction: URLs now referenced become
// committed, replaced ones orphaned.
func (s *AssetService) commit(ctx context.Context, tx *gorm.DB, orgMail string, current, replaced []string) error {
	repo := repositories.NewAssetRepository(tx)
	committed, err := repo.SetState(ctx, orgMail, current, models.AssetCommitted)
	if err != nil {
		return err
	}
	orphaned, err := repo.SetState(ctx, orgMail, replaced, models.AssetOrphaned)
	if err != nil {
		return err
	}
	s.metrics.ObserveAsset(string(models.AssetCommitted), int(committed))
	s.metrics.ObserveAsset(string(models.AssetOrphaned), int(orphaned))
	return nil
}

// Purge deletes orphaned files right after the transaction that orphaned
// them. Failures are logged and left for Sweep.
func (s *AssetService) Purge(ctx context.Context, orgMail string, urls []string) {
	if len(urls) == 0 {
		return
	}
	assets, err := repositories.NewAssetRepository(s.db).FindByURLs(ctx, orgMail, urls)
	if err != nil {
		configslog.Log.Warn("Replaced uploads could not be looked up", zap.String("org_mail", orgMail), zap.Error(err))
		return
	}
	orphaned := assets[:0]
	for _, a := range assets {
		if a.State == models.AssetOrphaned {
			orphaned = append(orphaned, a)
		}
	}
	s.remove(ctx, orphaned)
}

// Sweep deletes orphaned assets and pending ones older than pendingTTL.
func (s *AssetService) Sweep(ctx context.Context, pendingTTL time.Duration) (int, error) {
	repo := repositories.NewAssetRepository(s.db)
	total := 0
	for {
		assets, err := repo.FindSweepable(ctx, s.now().UTC().Add(-pendingTTL), sweepBatchSize)
		if err != nil {
			return total, err
		}
		if len(assets) == 0 {
			return total, nil
		}
		removed := s.remove(ctx, assets)
		total += removed
		if removed == 0 || len(assets) < sweepBatchSize {
			return total, nil
		}
	}
}

// remove deletes files then their rows. It returns how many were removed.
func (s *AssetService) remove(ctx context.Context, assets []models.UploadedAsset) int {
	ids := make([]uint, 0, len(assets))
	for _, a := range assets {
		if err := s.backend.Delete(ctx, a.Key); err != nil {
			configslog.Log.Warn("Upload could not be deleted", zap.String("org_mail", a.OrgMail), zap.String("key", a.Key), zap.Error(err))
			continue
		}
		ids = append(ids, a.ID)
	}
	if err := repositories.NewAssetRepository(s.db).DeleteByIDs(ctx, ids); err != nil {
		configslog.Log.Warn("Upload records could not be deleted", zap.Int("count", len(ids)), zap.Error(err))
		return 0
	}
	return len(ids)
}
