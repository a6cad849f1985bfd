package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"shopconsole.io/configs/configslog"
	"shopconsole.io/models"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/tenant"
	"shopconsole.io/pkg/tokens"
	"shopconsole.io/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 8

var (
	ErrInvalidCredentials = apperrors.Unauthorized("invalid email or password")
	ErrInvalidRefresh     = apperrors.Unauthorized("refresh token is invalid or expired")
	ErrAdminExists        = apperrors.Conflict("an admin with this email already exists")
)

type SignupInput struct {
	Name      string `json:"name"`
	OrgMail   string `json:"orgmail"`
	StoreName string `json:"store_name"`
	Password  string `json:"password"`
}

type LoginInput struct {
	OrgMail  string `json:"orgmail"`
	Password string `json:"password"`
}

// AuthResult is returned by signup, login and refresh.
type AuthResult struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresAt    time.Time     `json:"expiresAt"`
	Admin        *models.Admin `json:"admin"`
}

type IAuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, adminID uint) (*models.Admin, error)
}

type AuthService struct {
	admins     repositories.IAdminRepository
	issuer     *tokens.Issuer
	refresh    tokens.RefreshStore
	refreshTTL time.Duration
}

var _ IAuthService = (*AuthService)(nil)

func NewAuthService(db *gorm.DB, issuer *tokens.Issuer, refresh tokens.RefreshStore, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		admins:     repositories.NewAdminRepository(db),
		issuer:     issuer,
		refresh:    refresh,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}
	orgMail, err := tenant.Normalize(in.OrgMail)
	if err != nil {
		return nil, apperrors.Validation("a valid email is required")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, apperrors.Validation("password must be at least %d characters", MinPasswordLength)
	}

	if _, err := s.admins.FindByOrgMail(ctx, orgMail); err == nil {
		return nil, ErrAdminExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.Internal("signup failed", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("signup failed", err)
	}
	admin := &models.Admin{
		Name:         name,
		OrgMail:      orgMail,
		StoreName:    strings.TrimSpace(in.StoreName),
		PasswordHash: string(hash),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAdminExists
		}
		return nil, apperrors.Internal("signup failed", err)
	}
	configslog.Log.Info("Admin signed up", zap.String("org_mail", orgMail), zap.Uint("admin_id", admin.ID))
	return s.issue(ctx, admin)
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	orgMail, err := tenant.Normalize(in.OrgMail)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	admin, err := s.admins.FindByOrgMail(ctx, orgMail)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperrors.Internal("login failed", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)) != nil {
		configslog.Log.Info("Login rejected", zap.String("org_mail", orgMail))
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, admin)
}

// Refresh exchanges a refresh token for a new token pair. The old refresh
// token is consumed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefresh
	}
	adminID, err := s.refresh.Consume(ctx, refreshToken)
	if errors.Is(err, tokens.ErrInvalidToken) {
		return nil, ErrInvalidRefresh
	}
	if err != nil {
		return nil, apperrors.Internal("refresh failed", err)
	}
	admin, err := s.admins.FindByID(ctx, adminID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidRefresh
	}
	if err != nil {
		return nil, apperrors.Internal("refresh failed", err)
	}
	return s.issue(ctx, admin)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refresh.Revoke(ctx, refreshToken); err != nil {
		return apperrors.Internal("logout failed", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, adminID uint) (*models.Admin, error) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("admin not found")
	}
	if err != nil {
		return nil, apperrors.Internal("admin could not be loaded", err)
	}
	return admin, nil
}

func (s *AuthService) issue(ctx context.Context, admin *models.Admin) (*AuthResult, error) {
	access, expires, err := s.issuer.Issue(admin.ID, admin.OrgMail)
	if err != nil {
		return nil, apperrors.Internal("token could not be issued", err)
	}
	refresh, err := s.refresh.Create(ctx, admin.ID, s.refreshTTL)
	if err != nil {
		return nil, apperrors.Internal("token could not be issued", err)
	}
	return &AuthResult{AccessToken: access, RefreshToken: refresh, ExpiresAt: expires, Admin: admin}, nil
}
