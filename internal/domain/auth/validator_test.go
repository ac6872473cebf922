//go:build unit

package auth_test

import (
	"strings"
	"testing"

	"loginflow/internal/domain/auth"
	"loginflow/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldCase struct {
	name     string
	field    auth.Field
	value    string
	wantType auth.ErrorType // empty means valid
}

func runFieldCases(t *testing.T, v func(auth.Field, string) *auth.FieldError, cases []fieldCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := v(tc.field, tc.value)
			if tc.wantType == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.field, got.Field)
			assert.Equal(t, tc.wantType, got.Type)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestValidateField(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		runFieldCases(t, auth.ValidateField, []fieldCase{
			{name: "empty is required", field: auth.FieldEmail, value: "", wantType: auth.ErrorTypeRequired},
			{name: "blank is required", field: auth.FieldEmail, value: "   ", wantType: auth.ErrorTypeRequired},
			{name: "no at sign is format", field: auth.FieldEmail, value: "not-an-email", wantType: auth.ErrorTypeFormat},
			{name: "missing tld is format", field: auth.FieldEmail, value: "user@example", wantType: auth.ErrorTypeFormat},
			{name: "one letter tld is format", field: auth.FieldEmail, value: "user@example.c", wantType: auth.ErrorTypeFormat},
			{name: "numeric tld is format", field: auth.FieldEmail, value: "user@example.12", wantType: auth.ErrorTypeFormat},
			{name: "space inside is format", field: auth.FieldEmail, value: "us er@example.com", wantType: auth.ErrorTypeFormat},
			{name: "too long is maxLength", field: auth.FieldEmail, value: strings.Repeat("a", 250) + "@b.com", wantType: auth.ErrorTypeMaxLength},
			{name: "exactly 254 is valid", field: auth.FieldEmail, value: strings.Repeat("a", 248) + "@b.com"},
			{name: "plain address", field: auth.FieldEmail, value: "user@example.com"},
			{name: "tagged subdomain address", field: auth.FieldEmail, value: "first.last+tag@mail.example.co.uk"},
			{name: "surrounding whitespace is trimmed", field: auth.FieldEmail, value: "  user@example.com  "},
			{name: "uppercase passes", field: auth.FieldEmail, value: "USER@EXAMPLE.COM"},
		})
	})

	t.Run("password", func(t *testing.T) {
		runFieldCases(t, auth.ValidateField, []fieldCase{
			{name: "empty is required", field: auth.FieldPassword, value: "", wantType: auth.ErrorTypeRequired},
			{name: "five chars is minLength", field: auth.FieldPassword, value: "short", wantType: auth.ErrorTypeMinLength},
			{name: "seven chars is minLength", field: auth.FieldPassword, value: strings.Repeat("a", 7), wantType: auth.ErrorTypeMinLength},
			{name: "whitespace counts as characters", field: auth.FieldPassword, value: strings.Repeat(" ", 8)},
			{name: "eight chars is valid", field: auth.FieldPassword, value: strings.Repeat("a", 8)},
			{name: "128 chars is valid", field: auth.FieldPassword, value: strings.Repeat("a", 128)},
			{name: "129 chars is maxLength", field: auth.FieldPassword, value: strings.Repeat("a", 129), wantType: auth.ErrorTypeMaxLength},
		})
	})

	t.Run("unknown field has no rules", func(t *testing.T) {
		assert.Nil(t, auth.ValidateField(auth.Field("rememberMe"), ""))
		assert.Nil(t, auth.ValidateField(auth.Field("username"), "anything"))
	})

	t.Run("messages", func(t *testing.T) {
		assert.Equal(t, "Email is required", auth.ValidateField(auth.FieldEmail, "").Message)
		assert.Equal(t, "Password is required", auth.ValidateField(auth.FieldPassword, "").Message)
		assert.Equal(t, "password: Password is required", auth.ValidateField(auth.FieldPassword, "").Error())
	})
}

func TestValidateLoginForm(t *testing.T) {
	t.Run("both fields empty yields one error per field", func(t *testing.T) {
		got := auth.ValidateLoginForm(auth.Credentials{})

		want := auth.ValidationResult{
			Errors: []*auth.FieldError{
				{Field: auth.FieldEmail, Message: "Email is required", Type: auth.ErrorTypeRequired},
				{Field: auth.FieldPassword, Message: "Password is required", Type: auth.ErrorTypeRequired},
			},
			IsValid: false,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ValidationResult mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		got := auth.ValidateLoginForm(auth.Credentials{Email: "user@example.com", Password: "password123"})
		assert.True(t, got.IsValid)
		assert.Empty(t, got.Errors)
	})

	t.Run("does not short-circuit across fields", func(t *testing.T) {
		got := auth.ValidateLoginForm(auth.Credentials{Email: "bad", Password: "short"})
		require.Len(t, got.Errors, 2)
		assert.Equal(t, auth.ErrorTypeFormat, got.ErrorFor(auth.FieldEmail).Type)
		assert.Equal(t, auth.ErrorTypeMinLength, got.ErrorFor(auth.FieldPassword).Type)
	})

	t.Run("remember me is never validated", func(t *testing.T) {
		got := auth.ValidateLoginForm(auth.Credentials{Email: "user@example.com", Password: "password123", RememberMe: true})
		assert.True(t, got.IsValid)
	})

	t.Run("isValid tracks errors", func(t *testing.T) {
		got := auth.ValidateLoginForm(auth.Credentials{Email: "user@example.com"})
		assert.False(t, got.IsValid)
		require.Len(t, got.Errors, 1)
		assert.Nil(t, got.ErrorFor(auth.FieldEmail))
	})
}

func TestCustomRules(t *testing.T) {
	v, err := auth.NewValidator(
		auth.WithCustomRule(auth.FieldPassword, "hasdigit", "Password must contain a number", func(s string) bool {
			return strings.ContainsAny(s, "0123456789")
		}),
	)
	require.NoError(t, err)

	runFieldCases(t, v.ValidateField, []fieldCase{
		{name: "built-in rules run first", field: auth.FieldPassword, value: "abc", wantType: auth.ErrorTypeMinLength},
		{name: "custom rule fails", field: auth.FieldPassword, value: "abcdefgh", wantType: auth.ErrorTypeCustom},
		{name: "custom rule passes", field: auth.FieldPassword, value: "abcdefg1"},
	})

	t.Run("default validator is unaffected", func(t *testing.T) {
		assert.Nil(t, auth.ValidateField(auth.FieldPassword, "abcdefgh"))
	})

	t.Run("names matching built-in tags cannot replace them", func(t *testing.T) {
		alwaysPass := func(string) bool { return true }
		v, err := auth.NewValidator(
			auth.WithCustomRule(auth.FieldPassword, "min", "never shown", alwaysPass),
			auth.WithCustomRule(auth.FieldPassword, "max", "never shown", alwaysPass),
		)
		require.NoError(t, err)

		runFieldCases(t, v.ValidateField, []fieldCase{
			{name: "minimum still holds", field: auth.FieldPassword, value: "short", wantType: auth.ErrorTypeMinLength},
			{name: "maximum still holds", field: auth.FieldPassword, value: strings.Repeat("a", 129), wantType: auth.ErrorTypeMaxLength},
		})
	})

	t.Run("reserved or malformed names do not panic", func(t *testing.T) {
		for _, name := range []string{"required", "a,b", "a|b", "len=3", ""} {
			assert.NotPanics(t, func() {
				v, err := auth.NewValidator(auth.WithCustomRule(auth.FieldEmail, name, "Email is blocked", func(s string) bool {
					return !strings.HasSuffix(s, "@blocked.example")
				}))
				require.NoError(t, err)
				assert.Equal(t, auth.ErrorTypeRequired, v.ValidateField(auth.FieldEmail, "").Type)
				assert.Equal(t, auth.ErrorTypeCustom, v.ValidateField(auth.FieldEmail, "user@blocked.example").Type)
			}, name)
		}
	})

	t.Run("missing check is a configuration error", func(t *testing.T) {
		_, err := auth.NewValidator(auth.WithCustomRule(auth.FieldEmail, "nocheck", "unused", nil))
		assert.True(t, errs.Is(err, errs.ErrInvalidConfig))
	})
}
