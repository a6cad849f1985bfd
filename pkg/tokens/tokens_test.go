package tokens

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", 15*time.Minute)

	token, expires, err := issuer.Issue(7, "owner@shop.test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expires, 5*time.Second)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "owner@shop.test", claims.OrgMail)
	assert.Equal(t, "7", claims.Subject)
}

func TestIssuer_Rejects(t *testing.T) {
	issuer := NewIssuer("secret", time.Minute)
	token, _, err := issuer.Issue(1, "a@b.test")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewIssuer("other", time.Minute).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewIssuer("secret", time.Minute)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := issuer.Parse("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{AdminID: 1, OrgMail: "a@b.test"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = issuer.Parse(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing tenant", func(t *testing.T) {
		noOrg, _, err := issuer.Issue(1, "")
		require.NoError(t, err)
		_, err = issuer.Parse(noOrg)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMemoryStore_SingleUse(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	token, err := store.Create(ctx, 42, time.Hour)
	require.NoError(t, err)

	id, err := store.Consume(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = store.Consume(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMemoryStore_ExpiryAndRevoke(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	expired, err := store.Create(ctx, 1, time.Minute)
	require.NoError(t, err)
	revoked, err := store.Create(ctx, 2, time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, revoked))
	_, err = store.Consume(ctx, revoked)
	assert.ErrorIs(t, err, ErrInvalidToken)

	store.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = store.Consume(ctx, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
