package devauth

import (
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"loginflow/internal/domain/auth"
	"loginflow/internal/pkg/errs"
	"loginflow/internal/pkg/jwt"
	"loginflow/internal/pkg/password"
)

// dummyHash keeps unknown-email logins as slow as wrong-password ones.
var dummyHash = sync.OnceValue(func() string {
	h, _ := password.Hash("devauth-unknown-user", password.DefaultCost)
	return h
})

type TokenIssuer interface {
	IssuePair(sub jwt.Subject, refreshTTL time.Duration) (jwt.Pair, error)
}

type Service struct {
	store         *Store
	throttle      *Throttle
	issuer        TokenIssuer
	rememberMeTTL time.Duration
	logger        *slog.Logger
}

func NewService(store *Store, throttle *Throttle, issuer TokenIssuer, rememberMeTTL time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:         store,
		throttle:      throttle,
		issuer:        issuer,
		rememberMeTTL: rememberMeTTL,
		logger:        logger,
	}
}

type LoginInput struct {
	ClientIP    string
	Credentials auth.Credentials
}

// Authenticate checks, in order: the per-IP request rate, the email's lockout,
// the password, and finally whether the account is disabled. A disabled
// account is only revealed to a caller who knows its password.
func (s *Service) Authenticate(in LoginInput) (*auth.LoginResponse, *auth.AuthError) {
	creds := in.Credentials.Sanitized()
	logger := s.logger.With("email", creds.MaskedEmail(), "client_ip", in.ClientIP)

	if ok, retry := s.throttle.AllowRequest(in.ClientIP); !ok {
		logger.Info("login rate limited")
		return nil, withRetryAfter(auth.NewAuthError(auth.CodeTooManyAttempts), retry)
	}
	if locked, retry := s.throttle.Locked(creds.Email); locked {
		logger.Info("login for locked account")
		return nil, withRetryAfter(auth.NewAuthError(auth.CodeAccountLocked), retry)
	}

	user, err := s.store.FindByEmail(creds.Email)
	if err != nil {
		_ = password.Compare(dummyHash(), creds.Password)
		return nil, s.failed(logger, creds.Email, err)
	}
	if err := password.Compare(user.PasswordHash, creds.Password); err != nil {
		return nil, s.failed(logger, creds.Email, err)
	}
	if user.Disabled {
		logger.Info("login for disabled account")
		return nil, auth.NewAuthError(auth.CodeAccountDisabled)
	}

	var refreshTTL time.Duration
	if creds.RememberMe {
		refreshTTL = s.rememberMeTTL
	}
	pair, err := s.issuer.IssuePair(jwt.Subject{ID: user.ID.String(), Email: user.Email, Role: user.Role}, refreshTTL)
	if err != nil {
		logger.Error("token issuance failed", "error", err)
		return nil, auth.NewAuthError(auth.CodeServerError).WithCause(errs.Wrap(err, "issue tokens"))
	}
	s.throttle.Reset(creds.Email)

	logger.Info("login succeeded", "user_id", user.ID.String())
	return &auth.LoginResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Public(),
		RedirectURL:  user.RedirectURL,
		ExpiresAt:    pair.ExpiresAt.Unix(),
	}, nil
}

// User looks up the profile behind a validated access token.
func (s *Service) User(id string) (*auth.User, error) {
	u, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	public := u.Public()
	return &public, nil
}

func (s *Service) failed(logger *slog.Logger, email string, cause error) *auth.AuthError {
	reason := "wrong password"
	if errors.Is(cause, errs.ErrUserNotFound) {
		reason = "unknown email"
	}

	if s.throttle.RecordFailure(email) {
		logger.Info("account locked after repeated failures", "reason", reason)
		_, retry := s.throttle.Locked(email)
		return withRetryAfter(auth.NewAuthError(auth.CodeAccountLocked), retry)
	}
	logger.Info("login failed", "reason", reason)
	return auth.NewAuthError(auth.CodeInvalidCredentials).WithCause(cause)
}

func withRetryAfter(ae *auth.AuthError, d time.Duration) *auth.AuthError {
	if d > 0 {
		ae.Details = map[string]any{"retryAfter": int(math.Ceil(d.Seconds()))}
	}
	return ae
}
