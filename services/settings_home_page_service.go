package services

import (
	"context"

	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"

	"gorm.io/gorm"
)

// HomePageInput is a partial update. Nil fields keep the stored value.
type HomePageInput struct {
	HeroTitle        *string
	HeroSubtitle     *string
	HeroButtonText   *string
	HeroButtonLink   *string
	FeaturedTitle    *string
	FeaturedSubtitle *string

	// KeepHeroImages lists stored hero image URLs to keep, in order. Each
	// must already be part of the stored record.
	KeepHeroImages *[]string
	// NewHeroImages are URLs of files uploaded with this request. They are
	// appended after the kept images, or replace the list when
	// KeepHeroImages is nil.
	NewHeroImages []string
}

type IHomePageService interface {
	Get(ctx context.Context, orgMail string) (*models.HomePageSetting, error)
	Upsert(ctx context.Context, orgMail string, in HomePageInput) (*models.HomePageSetting, error)
}

type HomePageService struct {
	engine settingsEngine[models.HomePageSetting, *models.HomePageSetting]
}

var _ IHomePageService = (*HomePageService)(nil)

func NewHomePageService(db *gorm.DB, assets *AssetService) *HomePageService {
	return &HomePageService{engine: settingsEngine[models.HomePageSetting, *models.HomePageSetting]{db: db, assets: assets}}
}

func (s *HomePageService) Get(ctx context.Context, orgMail string) (*models.HomePageSetting, error) {
	return s.engine.get(ctx, orgMail)
}

func (s *HomePageService) Upsert(ctx context.Context, orgMail string, in HomePageInput) (*models.HomePageSetting, error) {
	return s.engine.mutate(ctx, orgMail, models.AdminActionUpdate, "home page saved",
		func(existing *models.HomePageSetting) (*models.HomePageSetting, error) {
			return BuildHomePage(existing, in)
		})
}

// BuildHomePage merges in onto base (which may be nil) and validates the result.
func BuildHomePage(base *models.HomePageSetting, in HomePageInput) (*models.HomePageSetting, error) {
	var next models.HomePageSetting
	if base != nil {
		next = *base
	}
	apply(&next.HeroTitle, in.HeroTitle)
	apply(&next.HeroSubtitle, in.HeroSubtitle)
	apply(&next.HeroButtonText, in.HeroButtonText)
	apply(&next.HeroButtonLink, in.HeroButtonLink)
	apply(&next.FeaturedTitle, in.FeaturedTitle)
	apply(&next.FeaturedSubtitle, in.FeaturedSubtitle)

	images, err := heroImages(next.HeroImages, in)
	if err != nil {
		return nil, err
	}
	next.HeroImages = images

	if err := required("Hero_Title", next.HeroTitle); err != nil {
		return nil, err
	}
	if n := len(next.HeroImages); n < models.MinHeroImages || n > models.MaxHeroImages {
		return nil, apperrors.Validation("Hero_Images must contain between %d and %d images, got %d",
			models.MinHeroImages, models.MaxHeroImages, n)
	}
	return &next, nil
}

func heroImages(stored []string, in HomePageInput) ([]string, error) {
	if in.KeepHeroImages == nil {
		if len(in.NewHeroImages) == 0 {
			return append([]string{}, stored...), nil
		}
		return append([]string{}, in.NewHeroImages...), nil
	}

	owned := make(map[string]bool, len(stored))
	for _, url := range stored {
		owned[url] = true
	}
	out := make([]string, 0, len(*in.KeepHeroImages)+len(in.NewHeroImages))
	seen := make(map[string]bool)
	for _, url := range *in.KeepHeroImages {
		if !owned[url] {
			return nil, apperrors.Validation("existingHeroImages: %q is not one of the stored hero images", url)
		}
		if seen[url] {
			continue
		}
		seen[url] = true
		out = append(out, url)
	}
	return append(out, in.NewHeroImages...), nil
}
