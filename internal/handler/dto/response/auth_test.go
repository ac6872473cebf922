//go:build unit

package response

import (
	"testing"

	"loginflow/internal/domain/auth"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewLoginResponse(t *testing.T) {
	avatar := "https://cdn.example.com/a.png"
	session := &auth.LoginResponse{
		Token: "secret",
		User: auth.User{
			ID:        "u-1",
			Email:     "user@example.com",
			Name:      "User",
			Role:      "member",
			AvatarURL: &avatar,
		},
		ExpiresAt: 1735689600,
	}

	got, err := NewLoginResponse(session, "/profile")
	require.NoError(t, err)

	want := LoginResponse{
		RedirectURL: "/profile",
		User: UserResponse{
			ID:        "u-1",
			Email:     "user@example.com",
			Name:      "User",
			Role:      "member",
			AvatarURL: &avatar,
		},
		ExpiresAt: 1735689600,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewLoginResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFieldErrors(t *testing.T) {
	got := NewFieldErrors([]*auth.FieldError{
		{Field: auth.FieldEmail, Type: auth.ErrorTypeRequired, Message: "Email is required"},
		{Field: auth.FieldPassword, Type: auth.ErrorTypeMinLength, Message: "Password must be at least 8 characters"},
	})

	want := []FieldErrorResponse{
		{Field: "email", Type: "required", Message: "Email is required"},
		{Field: "password", Type: "minLength", Message: "Password must be at least 8 characters"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewFieldErrors mismatch (-want +got):\n%s", diff)
	}

	require.NotNil(t, NewFieldErrors(nil))
}
