package loginform

import (
	"log/slog"

	"loginflow/internal/domain/auth"
)

type Option func(*options)

type options struct {
	validateOnChange bool
	validateOnBlur   bool
	onSuccess        func(*auth.LoginResponse)
	onError          func(*auth.AuthError)
	validator        *auth.Validator
	logger           *slog.Logger
}

func defaultOptions() options {
	return options{
		validateOnBlur: true,
		logger:         slog.Default(),
	}
}

func WithValidateOnChange(enabled bool) Option {
	return func(o *options) { o.validateOnChange = enabled }
}

func WithValidateOnBlur(enabled bool) Option {
	return func(o *options) { o.validateOnBlur = enabled }
}

// WithOnSuccess is called once per successful submission, outside the form lock.
// Redirect decisions belong here.
func WithOnSuccess(fn func(*auth.LoginResponse)) Option {
	return func(o *options) { o.onSuccess = fn }
}

// WithOnError is called once per failed authentication, outside the form lock.
func WithOnError(fn func(*auth.AuthError)) Option {
	return func(o *options) { o.onError = fn }
}

func WithValidator(v *auth.Validator) Option {
	return func(o *options) { o.validator = v }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
