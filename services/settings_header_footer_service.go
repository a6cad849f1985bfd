package services

import (
	"context"
	"fmt"

	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"

	"gorm.io/gorm"
)

// HeaderFooterInput is a partial update. Nil fields keep the stored value.
type HeaderFooterInput struct {
	NavbarLogo        *string
	NavIcons          *[]models.NavIcon
	CountryBlocks     *[]models.CountryBlock
	FooterLinks       *[]models.FooterLink
	SocialIcons       *[]models.SocialIcon
	FooterDescription *string
	FooterCopyright   *string

	// NavIconImages maps a NavIcons index to the URL of a file uploaded for it.
	NavIconImages map[int]string
}

// Header-footer sub-item list names accepted by RemoveItem.
const (
	ListNavIcons      = "navIcons"
	ListCountryBlocks = "countryBlocks"
	ListFooterLinks   = "footerLinks"
	ListSocialIcons   = "socialIcons"
)

type IHeaderFooterService interface {
	Get(ctx context.Context, orgMail string) (*models.HeaderFooterSetting, error)
	Upsert(ctx context.Context, orgMail string, in HeaderFooterInput) (*models.HeaderFooterSetting, error)
	RemoveItem(ctx context.Context, orgMail, list, itemID string) (*models.HeaderFooterSetting, error)
}

type HeaderFooterService struct {
	engine settingsEngine[models.HeaderFooterSetting, *models.HeaderFooterSetting]
}

var _ IHeaderFooterService = (*HeaderFooterService)(nil)

func NewHeaderFooterService(db *gorm.DB, assets *AssetService) *HeaderFooterService {
	return &HeaderFooterService{engine: settingsEngine[models.HeaderFooterSetting, *models.HeaderFooterSetting]{db: db, assets: assets}}
}

func (s *HeaderFooterService) Get(ctx context.Context, orgMail string) (*models.HeaderFooterSetting, error) {
	return s.engine.get(ctx, orgMail)
}

func (s *HeaderFooterService) Upsert(ctx context.Context, orgMail string, in HeaderFooterInput) (*models.HeaderFooterSetting, error) {
	return s.engine.mutate(ctx, orgMail, models.AdminActionUpdate, "header & footer saved",
		func(existing *models.HeaderFooterSetting) (*models.HeaderFooterSetting, error) {
			return BuildHeaderFooter(existing, in)
		})
}

func (s *HeaderFooterService) RemoveItem(ctx context.Context, orgMail, list, itemID string) (*models.HeaderFooterSetting, error) {
	detail := fmt.Sprintf("removed %s item %s", list, itemID)
	return s.engine.mutate(ctx, orgMail, models.AdminActionRemoveItem, detail,
		func(existing *models.HeaderFooterSetting) (*models.HeaderFooterSetting, error) {
			if existing == nil {
				return nil, apperrors.NotFound("header & footer settings not found")
			}
			next := *existing
			var err error
			switch list {
			case ListNavIcons:
				next.NavIcons, err = removeItem(next.NavIcons, itemID)
			case ListCountryBlocks:
				next.CountryBlocks, err = removeItem(next.CountryBlocks, itemID)
			case ListFooterLinks:
				next.FooterLinks, err = removeItem(next.FooterLinks, itemID)
			case ListSocialIcons:
				next.SocialIcons, err = removeItem(next.SocialIcons, itemID)
			default:
				return nil, apperrors.NotFound(fmt.Sprintf("unknown list %q", list))
			}
			if err != nil {
				return nil, err
			}
			return &next, nil
		})
}

// BuildHeaderFooter merges in onto base (which may be nil) and validates the
// result. base is not modified.
func BuildHeaderFooter(base *models.HeaderFooterSetting, in HeaderFooterInput) (*models.HeaderFooterSetting, error) {
	var next models.HeaderFooterSetting
	if base != nil {
		next = *base
	}
	apply(&next.NavbarLogo, in.NavbarLogo)
	apply(&next.FooterDescription, in.FooterDescription)
	apply(&next.FooterCopyright, in.FooterCopyright)
	if in.NavIcons != nil {
		next.NavIcons = *in.NavIcons
	}
	if in.CountryBlocks != nil {
		next.CountryBlocks = *in.CountryBlocks
	}
	if in.FooterLinks != nil {
		next.FooterLinks = *in.FooterLinks
	}
	if in.SocialIcons != nil {
		next.SocialIcons = *in.SocialIcons
	}

	var err error
	if next.NavIcons, err = spliceUploads("Nav_Icons", next.NavIcons, in.NavIconImages,
		func(icon *models.NavIcon, url string) { icon.IconImageURL = url }); err != nil {
		return nil, err
	}
	if err := required("Footer_Copyright", next.FooterCopyright); err != nil {
		return nil, err
	}
	if next.NavIcons, err = prepareItems("Nav_Icons", next.NavIcons); err != nil {
		return nil, err
	}
	if next.CountryBlocks, err = prepareItems("Country_Blocks", next.CountryBlocks); err != nil {
		return nil, err
	}
	if next.FooterLinks, err = prepareItems("Footer_Links", next.FooterLinks); err != nil {
		return nil, err
	}
	if next.SocialIcons, err = prepareItems("Social_Icons", next.SocialIcons); err != nil {
		return nil, err
	}
	return &next, nil
}
