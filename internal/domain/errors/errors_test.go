package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/internal/errors"
)

func TestBaseError_WithDetailsKeepsSentinelIdentity(t *testing.T) {
	t.Parallel()

	err := ErrProductNotFound.
		WithDetails("product deadbeef").
		WrapMessage("order references unknown product")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.NotErrorIs(t, err, ErrSaleNotFound)

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "product deadbeef", appErr.Details())
}

func TestBaseError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	t.Parallel()

	detailed := ErrUserNotFound.WithDetails("user 42")

	assert.Equal(t, "user 42", detailed.Details())
	assert.Empty(t, ErrUserNotFound.Details())
	assert.ErrorIs(t, detailed, ErrUserNotFound)
}

func TestBaseError_IsMatchesOnErrorCodeOnly(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUserNotFound, ErrUserNotFound)
	assert.NotErrorIs(t, ErrUserNotFound, ErrProductNotFound)
	assert.NotErrorIs(t, ErrUserNotFound, errors.New("找不到該使用者"))
}

func TestBaseError_WrapMessagePreservesChain(t *testing.T) {
	t.Parallel()

	err := ErrInvalidCredentials.WrapMessage("login failed")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "login failed")
}
