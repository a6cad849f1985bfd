package services

import (
	"context"
	"testing"
	"time"

	"shopconsole.io/database/dbtest"
	"shopconsole.io/pkg/apperrors"
	"shopconsole.io/pkg/tokens"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *tokens.Issuer) {
	t.Helper()
	issuer := tokens.NewIssuer("test-secret", 15*time.Minute)
	return NewAuthService(dbtest.Open(t), issuer, tokens.NewMemoryStore(), time.Hour), issuer
}

func signupInput() SignupInput {
	return SignupInput{Name: "Ada", OrgMail: "  Owner@Acme.Test ", StoreName: "Acme", Password: "correct horse"}
}

func TestAuth_SignupIssuesTenantToken(t *testing.T) {
	svc, issuer := newAuthService(t)

	res, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.test", res.Admin.OrgMail)
	assert.NotEmpty(t, res.RefreshToken)
	assert.NotEqual(t, "correct horse", res.Admin.PasswordHash)

	claims, err := issuer.Parse(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.test", claims.OrgMail)
	assert.Equal(t, res.Admin.ID, claims.AdminID)
}

func TestAuth_SignupRejects(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	_, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*SignupInput)
		code   apperrors.Code
	}{
		{"duplicate email", func(in *SignupInput) { in.OrgMail = "OWNER@acme.test" }, apperrors.CodeConflict},
		{"missing name", func(in *SignupInput) { in.Name = " " }, apperrors.CodeValidation},
		{"bad email", func(in *SignupInput) { in.OrgMail = "not-an-email" }, apperrors.CodeValidation},
		{"short password", func(in *SignupInput) { in.OrgMail = "b@b.test"; in.Password = "short" }, apperrors.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := signupInput()
			tt.mutate(&in)
			_, err := svc.Signup(ctx, in)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperrors.CodeOf(err))
		})
	}
}

func TestAuth_Login(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	_, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	res, err := svc.Login(ctx, LoginInput{OrgMail: "owner@acme.test", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", res.Admin.StoreName)

	_, err = svc.Login(ctx, LoginInput{OrgMail: "owner@acme.test", Password: "wrong password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, LoginInput{OrgMail: "nobody@acme.test", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_RefreshTokenIsSingleUse(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	first, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)

	require.NoError(t, svc.Logout(ctx, second.RefreshToken))
	_, err = svc.Refresh(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestAuth_Me(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	res, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)

	admin, err := svc.Me(ctx, res.Admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", admin.Name)

	_, err = svc.Me(ctx, res.Admin.ID+100)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}
