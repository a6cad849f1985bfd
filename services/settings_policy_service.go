package services

import (
	"context"

	"shopconsole.io/models"

	"gorm.io/gorm"
)

// PolicyInput is a partial update. Nil fields keep the stored value.
type PolicyInput struct {
	PrivacyPolicy   *string
	TermsConditions *string
	ReturnPolicy    *string
	ShippingPolicy  *string
	RefundPolicy    *string
}

type IPolicyService interface {
	Get(ctx context.Context, orgMail string) (*models.PolicyDetailsSetting, error)
	Upsert(ctx context.Context, orgMail string, in PolicyInput) (*models.PolicyDetailsSetting, error)
}

type PolicyService struct {
	engine settingsEngine[models.PolicyDetailsSetting, *models.PolicyDetailsSetting]
}

var _ IPolicyService = (*PolicyService)(nil)

func NewPolicyService(db *gorm.DB, assets *AssetService) *PolicyService {
	return &PolicyService{engine: settingsEngine[models.PolicyDetailsSetting, *models.PolicyDetailsSetting]{db: db, assets: assets}}
}

func (s *PolicyService) Get(ctx context.Context, orgMail string) (*models.PolicyDetailsSetting, error) {
	return s.engine.get(ctx, orgMail)
}

func (s *PolicyService) Upsert(ctx context.Context, orgMail string, in PolicyInput) (*models.PolicyDetailsSetting, error) {
	return s.engine.mutate(ctx, orgMail, models.AdminActionUpdate, "policies saved",
		func(existing *models.PolicyDetailsSetting) (*models.PolicyDetailsSetting, error) {
			return BuildPolicy(existing, in)
		})
}

// BuildPolicy merges in onto base (which may be nil) and validates the result.
func BuildPolicy(base *models.PolicyDetailsSetting, in PolicyInput) (*models.PolicyDetailsSetting, error) {
	var next models.PolicyDetailsSetting
	if base != nil {
		next = *base
	}
	apply(&next.PrivacyPolicy, in.PrivacyPolicy)
	apply(&next.TermsConditions, in.TermsConditions)
	apply(&next.ReturnPolicy, in.ReturnPolicy)
	apply(&next.ShippingPolicy, in.ShippingPolicy)
	apply(&next.RefundPolicy, in.RefundPolicy)

	if err := required("Privacy_Policy", next.PrivacyPolicy); err != nil {
		return nil, err
	}
	if err := required("Terms_Conditions", next.TermsConditions); err != nil {
		return nil, err
	}
	return &next, nil
}
