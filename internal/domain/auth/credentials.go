package auth

import (
	"strings"
	"unicode/utf8"
)

// Credentials are the raw values of one login form session.
type Credentials struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// SanitizeEmail trims surrounding whitespace and lowercases the address.
func SanitizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Sanitized returns a copy with the email normalized. The password is sent as typed.
func (c Credentials) Sanitized() Credentials {
	return Credentials{
		Email:      SanitizeEmail(c.Email),
		Password:   c.Password,
		RememberMe: c.RememberMe,
	}
}

// Value returns the raw value held for field, or "" for an unknown field.
func (c Credentials) Value(field Field) string {
	switch field {
	case FieldEmail:
		return c.Email
	case FieldPassword:
		return c.Password
	default:
		return ""
	}
}

// With returns a copy with field set to value. Unknown fields are ignored.
func (c Credentials) With(field Field, value string) Credentials {
	switch field {
	case FieldEmail:
		c.Email = value
	case FieldPassword:
		c.Password = value
	}
	return c
}

// MaskedEmail keeps the first character of the local part for log output.
func (c Credentials) MaskedEmail() string {
	email := SanitizeEmail(c.Email)
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	_, size := utf8.DecodeRuneInString(email)
	return email[:size] + "***" + email[at:]
}
