package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// settingsEngine holds the read / merge / upsert / re-read cycle shared by
// the four settings services.
type settingsEngine[T any, PT repositories.SettingsModel[T]] struct {
	db     *gorm.DB
	assets *AssetService
}

func (e *settingsEngine[T, PT]) get(ctx context.Context, orgMail string) (*T, error) {
	record, err := repositories.NewSettingsRepository[T, PT](e.db).FindByOrgMail(ctx, orgMail)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal("settings could not be loaded", err)
	}
	return record, nil
}

// mutate loads the tenant's record (nil when absent), lets build derive the
// next state from it and writes that state with one upsert. build must not
// modify the record it is given.
func (e *settingsEngine[T, PT]) mutate(ctx context.Context, orgMail, action, detail string, build func(existing *T) (*T, error)) (*T, error) {
	var (
		saved    *T
		replaced []string
	)
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewSettingsRepository[T, PT](tx)
		existing, err := repo.FindByOrgMail(ctx, orgMail)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		var previousURLs []string
		if existing != nil {
			previousURLs = PT(existing).AssetURLs()
		} else if action == models.AdminActionUpdate {
			action = models.AdminActionCreate
		}

		next, err := build(existing)
		if err != nil {
			return err
		}
		if err := e.claimNew(ctx, tx, orgMail, previousURLs, PT(next).AssetURLs()); err != nil {
			return err
		}
		PT(next).SetTenant(orgMail)
		if err := repo.Upsert(ctx, next); err != nil {
			return err
		}
		if saved, err = repo.FindByOrgMail(ctx, orgMail); err != nil {
			return err
		}

		current := PT(saved).AssetURLs()
		replaced = difference(previousURLs, current)
		if err := e.assets.commit(ctx, tx, orgMail, current, replaced); err != nil {
			return err
		}

		category := PT(saved).Category()
		entry := &models.AdminLog{Action: action, Category: string(category), Detail: detail}
		return repositories.NewBaseRepository[models.AdminLog](tx).Create(ctx, orgMail, entry)
	})
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		configslog.Log.Error("Settings write failed", zap.String("org_mail", orgMail), zap.String("action", action), zap.Error(err))
		return nil, apperrors.Internal("settings could not be saved", err)
	}

	e.assets.Purge(ctx, orgMail, replaced)
	return saved, nil
}

// claimNew keeps every uploaded file referenced by one field: a URL may
// appear once in the next state, and a URL the stored record did not hold
// must be a pending upload of the tenant.
func (e *settingsEngine[T, PT]) claimNew(ctx context.Context, tx *gorm.DB, orgMail string, previous, next []string) error {
	seen := make(map[string]bool, len(next))
	for _, url := range next {
		if seen[url] {
			return apperrors.Validation("file %q is used by more than one field", url)
		}
		seen[url] = true
	}
	return e.assets.claim(ctx, tx, orgMail, difference(next, previous))
}

// difference returns the elements of a missing from b.
func difference(a, b []string) []string {
	keep := make(map[string]bool, len(b))
	for _, s := range b {
		keep[s] = true
	}
	var out []string
	for _, s := range a {
		if !keep[s] {
			out = append(out, s)
		}
	}
	return out
}

// itemPtr is satisfied by pointers to the sub-item structs.
type itemPtr[E any] interface {
	*E
	models.SubItem
}

// prepareItems returns a validated copy of items with every missing id
// filled in. Caller supplied ids are kept and must be unique in the list.
func prepareItems[E any, PE itemPtr[E]](list string, items []E) ([]E, error) {
	out := make([]E, len(items))
	copy(out, items)
	seen := make(map[string]bool, len(out))
	for i := range out {
		item := PE(&out[i])
		id := strings.TrimSpace(item.ItemID())
		if id == "" {
			id = uuid.NewString()
		}
		if seen[id] {
			return nil, apperrors.Validation("%s[%d]: duplicate id %q", list, i, id)
		}
		seen[id] = true
		item.SetItemID(id)
		if err := item.Validate(); err != nil {
			return nil, apperrors.Validation("%s[%d]: %v", list, i, err)
		}
	}
	return out, nil
}

// removeItem returns a copy of items without the element whose id is itemID.
func removeItem[E any, PE itemPtr[E]](items []E, itemID string) ([]E, error) {
	out := make([]E, 0, len(items))
	found := false
	for i := range items {
		if PE(&items[i]).ItemID() == itemID {
			found = true
			continue
		}
		out = append(out, items[i])
	}
	if !found {
		return nil, apperrors.NotFound(fmt.Sprintf("item %q not found", itemID))
	}
	return out, nil
}

// spliceUploads copies items and sets the uploaded URL of each indexed file.
func spliceUploads[E any](list string, items []E, uploads map[int]string, set func(*E, string)) ([]E, error) {
	if len(uploads) == 0 {
		return items, nil
	}
	out := make([]E, len(items))
	copy(out, items)
	for idx, url := range uploads {
		if idx < 0 || idx >= len(out) {
			return nil, apperrors.Validation("%s: no item at index %d for uploaded file", list, idx)
		}
		set(&out[idx], url)
	}
	return out, nil
}

func required(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Validation("%s is required", field)
	}
	return nil
}

func apply(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
