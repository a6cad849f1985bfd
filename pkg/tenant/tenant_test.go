package tenant

import (
	"testing"

	"shopconsole.io/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize("  Owner@Acme.Example ")
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.example", got)

	_, err = Normalize("")
	assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))

	_, err = Normalize("not-an-email")
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))

	_, err = Normalize("Acme <owner@acme.example>")
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation), "display names are not tenant keys")
}
