package usecase

import (
	"context"
	"log/slog"
	"time"

	"loginflow/internal/domain/auth"
	"loginflow/internal/domain/redirect"
	"loginflow/internal/pkg/errs"
	"loginflow/internal/usecase/loginform"
)

var ErrSubmissionDropped = errs.New("login submission dropped")

// LoginRequest is one filled-in login form plus the redirect the page asked for.
type LoginRequest struct {
	Credentials auth.Credentials
	Redirect    string
}

// LoginResult is exactly one of: field errors, an AuthError, or a session.
type LoginResult struct {
	Outcome     loginform.Outcome
	FieldErrors []*auth.FieldError
	AuthError   *auth.AuthError
	Session     *auth.LoginResponse
	RedirectURL string
}

type SubmissionRecorder interface {
	ObserveSubmission(outcome, code string)
	ObserveAuthLatency(d time.Duration)
}

type LoginUseCase interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type LoginSettings struct {
	DefaultRedirect  string
	ValidateOnChange bool
	ValidateOnBlur   bool
}

type loginUseCaseImpl struct {
	client   loginform.Authenticator
	guard    *redirect.Guard
	settings LoginSettings
	recorder SubmissionRecorder
	logger   *slog.Logger
}

func NewLoginUseCase(client loginform.Authenticator, guard *redirect.Guard, settings LoginSettings, recorder SubmissionRecorder, logger *slog.Logger) LoginUseCase {
	if guard == nil {
		guard = redirect.NewGuard(nil)
	}
	if settings.DefaultRedirect == "" {
		settings.DefaultRedirect = redirect.DefaultTarget
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &loginUseCaseImpl{
		client:   &timedAuthenticator{next: client, recorder: recorder},
		guard:    guard,
		settings: settings,
		recorder: recorder,
		logger:   logger,
	}
}

// Login runs a single form session: fill, submit, and report what happened.
func (u *loginUseCaseImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	result := &LoginResult{}

	form := loginform.New(u.client,
		loginform.WithValidateOnChange(u.settings.ValidateOnChange),
		loginform.WithValidateOnBlur(u.settings.ValidateOnBlur),
		loginform.WithLogger(u.logger),
		loginform.WithOnSuccess(func(resp *auth.LoginResponse) {
			result.Session = resp
			result.RedirectURL = u.guard.FirstSafe(u.settings.DefaultRedirect, resp.RedirectURL, req.Redirect)
		}),
		loginform.WithOnError(func(ae *auth.AuthError) {
			result.AuthError = ae
		}),
	)
	form.SetValues(req.Credentials)

	result.Outcome = form.Submit(ctx)
	switch result.Outcome {
	case loginform.OutcomeInvalid:
		result.FieldErrors = form.Errors()
		u.record(result.Outcome, "")
	case loginform.OutcomeFailed:
		u.record(result.Outcome, string(result.AuthError.Code))
	case loginform.OutcomeSucceeded:
		u.record(result.Outcome, "")
	default:
		return nil, errs.Wrapf(ErrSubmissionDropped, "form %s", form.ID())
	}

	return result, nil
}

func (u *loginUseCaseImpl) record(outcome loginform.Outcome, code string) {
	if u.recorder != nil {
		u.recorder.ObserveSubmission(outcome.String(), code)
	}
}

// timedAuthenticator reports backend latency for every call, failed or not.
type timedAuthenticator struct {
	next     loginform.Authenticator
	recorder SubmissionRecorder
}

func (a *timedAuthenticator) Login(ctx context.Context, credentials auth.Credentials) (*auth.LoginResponse, error) {
	start := time.Now()
	resp, err := a.next.Login(ctx, credentials)
	if a.recorder != nil {
		a.recorder.ObserveAuthLatency(time.Since(start))
	}
	return resp, err
}
