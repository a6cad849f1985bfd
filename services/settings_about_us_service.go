package services

import (
	"context"
	"fmt"

	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"

	"gorm.io/gorm"
)

// AboutUsInput is a partial update. Nil fields keep the stored value.
type AboutUsInput struct {
	AboutTitle       *string
	AboutDescription *string
	AboutImage       *string
	Mission          *string
	Vision           *string
	Statistics       *[]models.Statistic
	Features         *[]models.Feature
	WorkingTitle     *string
	WorkingItems     *[]models.WorkingItem

	// WorkingItemImages maps a WorkingItems index to an uploaded image URL.
	WorkingItemImages map[int]string
}

const (
	ListStatistics   = "statistics"
	ListFeatures     = "features"
	ListWorkingItems = "workingItems"
)

type IAboutUsService interface {
	Get(ctx context.Context, orgMail string) (*models.AboutUsSetting, error)
	Upsert(ctx context.Context, orgMail string, in AboutUsInput) (*models.AboutUsSetting, error)
	RemoveItem(ctx context.Context, orgMail, list, itemID string) (*models.AboutUsSetting, error)
}

type AboutUsService struct {
	engine settingsEngine[models.AboutUsSetting, *models.AboutUsSetting]
}

var _ IAboutUsService = (*AboutUsService)(nil)

func NewAboutUsService(db *gorm.DB, assets *AssetService) *AboutUsService {
	return &AboutUsService{engine: settingsEngine[models.AboutUsSetting, *models.AboutUsSetting]{db: db, assets: assets}}
}

func (s *AboutUsService) Get(ctx context.Context, orgMail string) (*models.AboutUsSetting, error) {
	return s.engine.get(ctx, orgMail)
}

func (s *AboutUsService) Upsert(ctx context.Context, orgMail string, in AboutUsInput) (*models.AboutUsSetting, error) {
	return s.engine.mutate(ctx, orgMail, models.AdminActionUpdate, "about us saved",
		func(existing *models.AboutUsSetting) (*models.AboutUsSetting, error) {
			return BuildAboutUs(existing, in)
		})
}

func (s *AboutUsService) RemoveItem(ctx context.Context, orgMail, list, itemID string) (*models.AboutUsSetting, error) {
	detail := fmt.Sprintf("removed %s item %s", list, itemID)
	return s.engine.mutate(ctx, orgMail, models.AdminActionRemoveItem, detail,
		func(existing *models.AboutUsSetting) (*models.AboutUsSetting, error) {
			if existing == nil {
				return nil, apperrors.NotFound("about us settings not found")
			}
			next := *existing
			var err error
			switch list {
			case ListStatistics:
				next.Statistics, err = removeItem(next.Statistics, itemID)
			case ListFeatures:
				next.Features, err = removeItem(next.Features, itemID)
			case ListWorkingItems:
				next.WorkingItems, err = removeItem(next.WorkingItems, itemID)
			default:
				return nil, apperrors.NotFound(fmt.Sprintf("unknown list %q", list))
			}
			if err != nil {
				return nil, err
			}
			return &next, nil
		})
}

// BuildAboutUs merges in onto base (which may be nil) and validates the result.
func BuildAboutUs(base *models.AboutUsSetting, in AboutUsInput) (*models.AboutUsSetting, error) {
	var next models.AboutUsSetting
	if base != nil {
		next = *base
	}
	apply(&next.AboutTitle, in.AboutTitle)
	apply(&next.AboutDescription, in.AboutDescription)
	apply(&next.AboutImage, in.AboutImage)
	apply(&next.Mission, in.Mission)
	apply(&next.Vision, in.Vision)
	apply(&next.WorkingTitle, in.WorkingTitle)
	if in.Statistics != nil {
		next.Statistics = *in.Statistics
	}
	if in.Features != nil {
		next.Features = *in.Features
	}
	if in.WorkingItems != nil {
		next.WorkingItems = *in.WorkingItems
	}

	var err error
	if next.WorkingItems, err = spliceUploads("Working_Items", next.WorkingItems, in.WorkingItemImages,
		func(item *models.WorkingItem, url string) { item.Image = url }); err != nil {
		return nil, err
	}
	if err := required("About_Title", next.AboutTitle); err != nil {
		return nil, err
	}
	if next.Statistics, err = prepareItems("Statistics", next.Statistics); err != nil {
		return nil, err
	}
	if next.Features, err = prepareItems("Features", next.Features); err != nil {
		return nil, err
	}
	if next.WorkingItems, err = prepareItems("Working_Items", next.WorkingItems); err != nil {
		return nil, err
	}
	return &next, nil
}
