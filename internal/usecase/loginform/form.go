// Package loginform holds the login submission state machine.
//
// A Form is one form session: it owns the credentials being edited, the
// per-field validation errors, the touched flags, the stored authentication
// error and the submission state. At most one authentication call is in flight
// per Form; a Submit while one is outstanding is dropped.
package loginform

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"loginflow/internal/domain/auth"
	"loginflow/internal/pkg/errs"
)

// Authenticator is the external authentication backend.
type Authenticator interface {
	Login(ctx context.Context, credentials auth.Credentials) (*auth.LoginResponse, error)
}

// status keeps the re-entrancy flag next to the state it guards.
type status struct {
	state    SubmissionState
	inFlight bool
	// generation changes on Reset so a late response cannot touch a reset form.
	generation uint64
}

type Form struct {
	id        uuid.UUID
	client    Authenticator
	opts      options
	validator *auth.Validator
	logger    *slog.Logger

	mu      sync.Mutex
	values  auth.Credentials
	errors  map[auth.Field]*auth.FieldError
	touched map[auth.Field]bool
	authErr *auth.AuthError
	status  status
}

func New(client Authenticator, opts ...Option) *Form {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := o.validator
	if v == nil {
		var err error
		if v, err = auth.NewValidator(); err != nil {
			panic("loginform: " + err.Error())
		}
	}

	id := uuid.New()
	return &Form{
		id:        id,
		client:    client,
		opts:      o,
		validator: v,
		logger:    o.logger.With("form_id", id.String()),
		errors:    map[auth.Field]*auth.FieldError{},
		touched:   map[auth.Field]bool{},
	}
}

// Change updates field. A fresh edit clears a stale authentication error.
func (f *Form) Change(field auth.Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = f.values.With(field, value)
	f.authErr = nil
	if f.opts.validateOnChange {
		f.validateFieldLocked(field)
	}
}

func (f *Form) SetRememberMe(rememberMe bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values.RememberMe = rememberMe
	f.authErr = nil
}

// SetValues replaces all values at once, as a filled-in form post does.
func (f *Form) SetValues(c auth.Credentials) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = c
	f.authErr = nil
	if f.opts.validateOnChange {
		for _, field := range auth.Fields {
			f.validateFieldLocked(field)
		}
	}
}

func (f *Form) Blur(field auth.Field) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.touched[field] = true
	if f.opts.validateOnBlur {
		f.validateFieldLocked(field)
	}
}

// Submit validates the form and, when valid, calls the authenticator with the
// sanitized credentials. It blocks until the call resolves. Callbacks run after
// the state transition, outside the lock.
func (f *Form) Submit(ctx context.Context) Outcome {
	f.mu.Lock()
	if f.status.inFlight {
		f.mu.Unlock()
		f.logger.Debug("submit ignored, submission in flight")
		return OutcomeIgnored
	}

	result := f.validator.ValidateLoginForm(f.values)
	f.errors = make(map[auth.Field]*auth.FieldError, len(result.Errors))
	for _, fe := range result.Errors {
		f.errors[fe.Field] = fe
	}
	if !result.IsValid {
		for _, field := range auth.Fields {
			f.touched[field] = true
		}
		f.status.state = StateError
		f.mu.Unlock()
		f.logger.Debug("submit rejected by validation", "errors", len(result.Errors))
		return OutcomeInvalid
	}

	f.authErr = nil
	f.status.state = StateSubmitting
	f.status.inFlight = true
	generation := f.status.generation
	credentials := f.values.Sanitized()
	f.mu.Unlock()

	f.logger.Debug("submitting credentials", "email", credentials.MaskedEmail(), "remember_me", credentials.RememberMe)
	resp, err := f.login(ctx, credentials)
	if err == nil && resp == nil {
		err = errs.ErrMalformedResponse
	}

	f.mu.Lock()
	if f.status.generation != generation {
		f.mu.Unlock()
		f.logger.Debug("discarding response for a reset form")
		return OutcomeIgnored
	}
	f.status.inFlight = false

	if err != nil {
		authErr := auth.AsAuthError(err)
		f.authErr = authErr
		f.status.state = StateError
		f.mu.Unlock()

		f.logger.Info("login failed", "code", string(authErr.Code))
		if f.opts.onError != nil {
			f.opts.onError(authErr)
		}
		return OutcomeFailed
	}

	f.status.state = StateSuccess
	f.mu.Unlock()

	f.logger.Info("login succeeded", "user_id", resp.User.ID)
	if f.opts.onSuccess != nil {
		f.opts.onSuccess(resp)
	}
	return OutcomeSucceeded
}

// login turns a panicking authenticator into an error so the form never stays in flight.
func (f *Form) login(ctx context.Context, credentials auth.Credentials) (resp *auth.LoginResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("authenticator panicked", "panic", r)
			resp, err = nil, errs.Newf("authenticator panicked: %v", r)
		}
	}()
	return f.client.Login(ctx, credentials)
}

// Reset returns the form to its initial empty state from any state.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = auth.Credentials{}
	f.errors = map[auth.Field]*auth.FieldError{}
	f.touched = map[auth.Field]bool{}
	f.authErr = nil
	f.status = status{state: StateIdle, generation: f.status.generation + 1}
}

func (f *Form) validateFieldLocked(field auth.Field) {
	if fe := f.validator.ValidateField(field, f.values.Value(field)); fe != nil {
		f.errors[field] = fe
		return
	}
	delete(f.errors, field)
}

func (f *Form) ID() uuid.UUID {
	return f.id
}

func (f *Form) State() SubmissionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status.state
}

func (f *Form) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status.inFlight
}

func (f *Form) Values() auth.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) AuthError() *auth.AuthError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authErr
}

func (f *Form) FieldError(field auth.Field) *auth.FieldError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[field]
}

// Errors returns the current field errors in field order.
func (f *Form) Errors() []*auth.FieldError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorsLocked()
}

func (f *Form) Touched(field auth.Field) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched[field]
}

// Snapshot is a consistent copy of the form for rendering.
type Snapshot struct {
	ID         uuid.UUID
	State      SubmissionState
	Values     auth.Credentials
	Errors     []*auth.FieldError
	Touched    map[auth.Field]bool
	AuthError  *auth.AuthError
	Submitting bool
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	touched := make(map[auth.Field]bool, len(f.touched))
	for k, v := range f.touched {
		touched[k] = v
	}
	return Snapshot{
		ID:         f.id,
		State:      f.status.state,
		Values:     f.values,
		Errors:     f.errorsLocked(),
		Touched:    touched,
		AuthError:  f.authErr,
		Submitting: f.status.inFlight,
	}
}

func (f *Form) errorsLocked() []*auth.FieldError {
	out := make([]*auth.FieldError, 0, len(f.errors))
	for _, field := range auth.Fields {
		if fe, ok := f.errors[field]; ok {
			out = append(out, fe)
		}
	}
	return out
}
