//go:build unit

package auth_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"loginflow/internal/domain/auth"
	"loginflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthError(t *testing.T) {
	t.Run("new uses the generic message", func(t *testing.T) {
		err := auth.NewAuthError(auth.CodeInvalidCredentials)
		assert.Equal(t, "Invalid email or password", err.Message)
		assert.Equal(t, "INVALID_CREDENTIALS: Invalid email or password", err.Error())
	})

	t.Run("matches by code", func(t *testing.T) {
		err := fmt.Errorf("login: %w", &auth.AuthError{Code: auth.CodeAccountLocked, Message: "locked"})
		assert.ErrorIs(t, err, auth.NewAuthError(auth.CodeAccountLocked))
		assert.NotErrorIs(t, err, auth.NewAuthError(auth.CodeAccountDisabled))
	})

	t.Run("unknown code falls back to the server message", func(t *testing.T) {
		assert.False(t, auth.AuthErrorCode("NOPE").IsValid())
		assert.Equal(t, auth.CodeServerError.GenericMessage(), auth.AuthErrorCode("NOPE").GenericMessage())
	})
}

func TestAsAuthError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, auth.AsAuthError(nil))
	})

	t.Run("auth error in chain is returned verbatim", func(t *testing.T) {
		orig := &auth.AuthError{Code: auth.CodeInvalidCredentials, Message: "Invalid email or password", Details: map[string]any{"attempts": 2}}
		got := auth.AsAuthError(fmt.Errorf("wrapped: %w", orig))
		require.NotNil(t, got)
		assert.Same(t, orig, got)
	})

	t.Run("deadline becomes network error", func(t *testing.T) {
		got := auth.AsAuthError(fmt.Errorf("post: %w", context.DeadlineExceeded))
		assert.Equal(t, auth.CodeNetworkError, got.Code)
	})

	t.Run("marked cancellation becomes network error", func(t *testing.T) {
		got := auth.AsAuthError(errs.Mark(errors.New("request aborted"), context.Canceled))
		assert.Equal(t, auth.CodeNetworkError, got.Code)
	})

	t.Run("anything else becomes server error", func(t *testing.T) {
		got := auth.AsAuthError(errors.New("boom"))
		assert.Equal(t, auth.CodeServerError, got.Code)
		assert.NotContains(t, got.Message, "boom")
	})
}
