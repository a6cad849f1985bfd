package services

import (
	"context"

	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/repositories"

	"gorm.io/gorm"
)

// Wizard step names, in order.
const (
	StepSignup   = "signup"
	StepSettings = "settings"
	StepAboutUs  = "aboutus"
	StepHome     = "home"
	StepPolicy   = "policy"
)

var WizardSteps = []string{StepSignup, StepSettings, StepAboutUs, StepHome, StepPolicy}

// stepCategories maps each settings step to the record it writes.
var stepCategories = map[string]models.SettingsCategory{
	StepSettings: models.CategoryHeaderFooter,
	StepAboutUs:  models.CategoryAboutUs,
	StepHome:     models.CategoryHomePage,
	StepPolicy:   models.CategoryPolicyDetails,
}

// NextStep returns the step after name. ok is false for the last step and
// for unknown names.
func NextStep(name string) (next string, ok bool) {
	for i, step := range WizardSteps {
		if step == name && i+1 < len(WizardSteps) {
			return WizardSteps[i+1], true
		}
	}
	return "", false
}

type StepStatus struct {
	Name      string                  `json:"name"`
	Category  models.SettingsCategory `json:"category,omitempty"`
	Completed bool                    `json:"completed"`
}

type Progress struct {
	Steps       []StepStatus `json:"steps"`
	CurrentStep string       `json:"currentStep"`
	Completed   bool         `json:"completed"`
}

type IOnboardingService interface {
	Progress(ctx context.Context, orgMail string) (*Progress, error)
}

// OnboardingService derives wizard progress from which settings records
// exist. Nothing about progress is stored.
type OnboardingService struct {
	exists map[models.SettingsCategory]func(ctx context.Context, orgMail string) (bool, error)
}

var _ IOnboardingService = (*OnboardingService)(nil)

func NewOnboardingService(db *gorm.DB) *OnboardingService {
	return &OnboardingService{exists: map[models.SettingsCategory]func(context.Context, string) (bool, error){
		models.CategoryHeaderFooter:  repositories.NewSettingsRepository[models.HeaderFooterSetting](db).Exists,
		models.CategoryAboutUs:       repositories.NewSettingsRepository[models.AboutUsSetting](db).Exists,
		models.CategoryHomePage:      repositories.NewSettingsRepository[models.HomePageSetting](db).Exists,
		models.CategoryPolicyDetails: repositories.NewSettingsRepository[models.PolicyDetailsSetting](db).Exists,
	}}
}

func (s *OnboardingService) Progress(ctx context.Context, orgMail string) (*Progress, error) {
	p := &Progress{Completed: true}
	for _, step := range WizardSteps {
		status := StepStatus{Name: step, Completed: true}
		if category, ok := stepCategories[step]; ok {
			status.Category = category
			done, err := s.exists[category](ctx, orgMail)
			if err != nil {
				return nil, apperrors.Internal("onboarding progress could not be loaded", err)
			}
			status.Completed = done
		}
		if !status.Completed && p.Completed {
			p.Completed = false
			p.CurrentStep = step
		}
		p.Steps = append(p.Steps, status)
	}
	return p, nil
}
