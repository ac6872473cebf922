// Package authclient talks to the external authentication backend.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"loginflow/internal/domain/auth"
	"loginflow/internal/infra"
	"loginflow/internal/pkg/errs"
)

const (
	DefaultTimeout = 10 * time.Second
	LoginPath      = "/auth/login"

	maxBodyBytes = 1 << 20
)

// Config is passed in at composition time; nothing is read from the environment here.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Client struct {
	loginURL   string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type errorBody struct {
	Code    auth.AuthErrorCode `json:"code"`
	Message string             `json:"message"`
	Details map[string]any     `json:"details,omitempty"`
}

func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse auth base url"), errs.ErrInvalidConfig)
	}
	if base.Scheme != "http" && base.Scheme != "https" || base.Host == "" {
		return nil, errs.Mark(errs.New("auth base url must be an absolute http(s) url"), errs.ErrInvalidConfig)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		loginURL:   strings.TrimRight(base.String(), "/") + LoginPath,
		timeout:    timeout,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Login posts the credentials and returns the session, or an *auth.AuthError.
// The call is bounded by the configured timeout; expiry yields NETWORK_ERROR.
func (c *Client) Login(ctx context.Context, credentials auth.Credentials) (*auth.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(loginRequest{
		Email:      credentials.Email,
		Password:   credentials.Password,
		RememberMe: credentials.RememberMe,
	})
	if err != nil {
		return nil, auth.NewAuthError(auth.CodeServerError).WithCause(errs.Wrap(err, "encode login request"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, bytes.NewReader(payload))
	if err != nil {
		return nil, auth.NewAuthError(auth.CodeServerError).WithCause(errs.Wrap(err, "build login request"))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.rejection(resp.StatusCode, body)
	}

	var out auth.LoginResponse
	if err := json.Unmarshal(body, &out); err != nil {
		cause := infra.WrapBackendErr(c.logger, infra.KindDecode, "decode login response", errs.Mark(err, errs.ErrMalformedResponse))
		return nil, auth.NewAuthError(auth.CodeServerError).WithCause(cause)
	}
	if out.Token == "" {
		cause := infra.WrapBackendErr(c.logger, infra.KindDecode, "login response without token", errs.ErrMalformedResponse)
		return nil, auth.NewAuthError(auth.CodeServerError).WithCause(cause)
	}
	return &out, nil
}

func (c *Client) transportError(err error) error {
	kind := infra.KindTransport
	if errors.Is(err, context.DeadlineExceeded) {
		kind = infra.KindTimeout
	}
	cause := infra.WrapBackendErr(c.logger, kind, "login request failed", errs.Mark(err, errs.ErrBackendUnavailable))
	return auth.NewAuthError(auth.CodeNetworkError).WithCause(cause)
}

// rejection prefers the backend's own {code, message}; the status mapping is the fallback.
func (c *Client) rejection(status int, body []byte) error {
	code := CodeForStatus(status)

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Code.IsValid() {
		ae := &auth.AuthError{Code: eb.Code, Message: eb.Message, Details: eb.Details}
		if ae.Message == "" {
			ae.Message = eb.Code.GenericMessage()
		}
		return ae
	}

	cause := infra.WrapBackendErr(c.logger, infra.KindRejected, http.StatusText(status), nil)
	return auth.NewAuthError(code).WithCause(errs.WithSafeDetail(cause, "status=%d", status))
}

// CodeForStatus maps a backend HTTP status to an error code.
func CodeForStatus(status int) auth.AuthErrorCode {
	switch {
	case status == http.StatusBadRequest:
		return auth.CodeValidationError
	case status == http.StatusUnauthorized:
		return auth.CodeInvalidCredentials
	case status == http.StatusForbidden:
		return auth.CodeAccountDisabled
	case status == http.StatusRequestTimeout:
		return auth.CodeNetworkError
	case status == http.StatusLocked:
		return auth.CodeAccountLocked
	case status == http.StatusTooManyRequests:
		return auth.CodeTooManyAttempts
	default:
		return auth.CodeServerError
	}
}
