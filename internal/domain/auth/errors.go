package auth

import (
	"context"

	"loginflow/internal/pkg/errs"
)

type AuthErrorCode string

const (
	CodeInvalidCredentials AuthErrorCode = "INVALID_CREDENTIALS"
	CodeAccountLocked      AuthErrorCode = "ACCOUNT_LOCKED"
	CodeAccountDisabled    AuthErrorCode = "ACCOUNT_DISABLED"
	CodeTooManyAttempts    AuthErrorCode = "TOO_MANY_ATTEMPTS"
	CodeSessionExpired     AuthErrorCode = "SESSION_EXPIRED"
	CodeNetworkError       AuthErrorCode = "NETWORK_ERROR"
	CodeServerError        AuthErrorCode = "SERVER_ERROR"
	CodeValidationError    AuthErrorCode = "VALIDATION_ERROR"
)

// Generic messages never say which field was wrong or whether the account exists.
var genericMessages = map[AuthErrorCode]string{
	CodeInvalidCredentials: "Invalid email or password",
	CodeAccountLocked:      "Account is temporarily locked. Please try again later",
	CodeAccountDisabled:    "Account is disabled. Please contact support",
	CodeTooManyAttempts:    "Too many login attempts. Please try again later",
	CodeSessionExpired:     "Your session has expired. Please sign in again",
	CodeNetworkError:       "Unable to reach the server. Please check your connection",
	CodeServerError:        "An unexpected error occurred. Please try again later",
	CodeValidationError:    "Please check your input and try again",
}

func (c AuthErrorCode) IsValid() bool {
	_, ok := genericMessages[c]
	return ok
}

// GenericMessage returns the user-facing message for code.
func (c AuthErrorCode) GenericMessage() string {
	if msg, ok := genericMessages[c]; ok {
		return msg
	}
	return genericMessages[CodeServerError]
}

// AuthError is produced by the authentication backend or by the client's
// network/timeout mapping. It is never built from field validation failures.
type AuthError struct {
	Code    AuthErrorCode  `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`

	cause error
}

func NewAuthError(code AuthErrorCode) *AuthError {
	return &AuthError{Code: code, Message: code.GenericMessage()}
}

func (e *AuthError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// WithCause records the low-level failure behind e for logs. The message is unchanged.
func (e *AuthError) WithCause(err error) *AuthError {
	e.cause = err
	return e
}

func (e *AuthError) Unwrap() error {
	return e.cause
}

// Is matches another *AuthError with the same code.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// AsAuthError gives err the AuthError shape. An AuthError found in the chain is
// returned unchanged; deadlines and cancellations map to NETWORK_ERROR, anything
// else to SERVER_ERROR.
func AsAuthError(err error) *AuthError {
	if err == nil {
		return nil
	}
	var ae *AuthError
	if errs.As(err, &ae) {
		return ae
	}
	if errs.Is(err, context.DeadlineExceeded) || errs.Is(err, context.Canceled) {
		return NewAuthError(CodeNetworkError)
	}
	return NewAuthError(CodeServerError)
}
