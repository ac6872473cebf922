//go:build unit

package devauth_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"loginflow/internal/devauth"
	"loginflow/internal/domain/auth"
	"loginflow/internal/handler"
	"loginflow/internal/handler/middleware"
	"loginflow/internal/pkg/clock"
	"loginflow/internal/pkg/config"
	"loginflow/internal/pkg/jwt"
	"loginflow/tests/common/builder"
	"loginflow/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

var devNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type DevAuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *DevAuthHandlerTestSuite) SetupTest() {
	s.router = newDevAuthRouter(s.T(), devauth.ThrottleConfig{MaxFailures: 3, FailureWindow: time.Minute})
}

func newDevAuthRouter(t *testing.T, throttle devauth.ThrottleConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := devauth.NewStore([]devauth.SeedUser{
		builder.NewUserBuilder().WithRedirectURL("/profile").BuildSeed(),
		builder.NewUserBuilder().WithEmail("disabled@example.com").
			With(func(s *devauth.SeedUser) { s.ID = "" }).Disabled().BuildSeed(),
	}, bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	issuer := jwt.NewIssuer("test-secret", "devauth", 15*time.Minute, 24*time.Hour, clock.NewMockClock(devNow))
	service := devauth.NewService(store, devauth.NewThrottle(throttle), issuer, 30*24*time.Hour, discard)

	engine := gin.New()
	handler.NewDevAuthRouter(engine, middleware.NewLogger(config.NewTestConfig().Log), devauth.NewHandler(service), middleware.NewAuthMiddleware(issuer))
	return engine
}

func TestDevAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevAuthHandlerTestSuite))
}

func (s *DevAuthHandlerTestSuite) login(body any, headers map[string]string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, headers)
}

func (s *DevAuthHandlerTestSuite) TestLoginSuccess() {
	s.Run("issues tokens and returns the user", func() {
		rec := s.login(builder.NewAuthBuilder().BuildCredentials(), nil)

		var resp auth.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.NotEmpty(resp.Token)
		s.NotEmpty(resp.RefreshToken)
		s.Equal("test@example.com", resp.User.Email)
		s.Equal("/profile", resp.RedirectURL)
		s.Equal(devNow.Add(24*time.Hour).Unix(), resp.ExpiresAt)

		claims, err := jwt.Inspect(resp.Token)
		s.Require().NoError(err)
		s.Equal(resp.User.ID, claims.Subject)
	})

	s.Run("remember me extends the session", func() {
		rec := s.login(builder.NewAuthBuilder().Remembered().BuildCredentials(), nil)

		var resp auth.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(devNow.Add(30*24*time.Hour).Unix(), resp.ExpiresAt)
	})

	s.Run("email is matched case-insensitively", func() {
		rec := s.login(builder.NewAuthBuilder().WithEmail(" TEST@example.com ").BuildCredentials(), nil)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *DevAuthHandlerTestSuite) TestLoginFailures() {
	cases := []struct {
		name       string
		body       any
		expectCode int
		authCode   auth.AuthErrorCode
	}{
		{name: "wrong password", body: builder.NewAuthBuilder().WithPassword("wrong-password").BuildCredentials(), expectCode: http.StatusUnauthorized, authCode: auth.CodeInvalidCredentials},
		{name: "unknown email", body: builder.NewAuthBuilder().WithEmail("nobody@example.com").BuildCredentials(), expectCode: http.StatusUnauthorized, authCode: auth.CodeInvalidCredentials},
		{name: "disabled account", body: builder.NewAuthBuilder().WithEmail("disabled@example.com").BuildCredentials(), expectCode: http.StatusForbidden, authCode: auth.CodeAccountDisabled},
		{name: "disabled account wrong password", body: builder.NewAuthBuilder().WithEmail("disabled@example.com").WithPassword("nope-nope").BuildCredentials(), expectCode: http.StatusUnauthorized, authCode: auth.CodeInvalidCredentials},
		{name: "malformed body", body: `{"email":`, expectCode: http.StatusBadRequest, authCode: auth.CodeValidationError},
		{name: "missing password", body: map[string]any{"email": "test@example.com"}, expectCode: http.StatusBadRequest, authCode: auth.CodeValidationError},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.login(tc.body, nil)
			assertWireError(s.T(), rec, tc.expectCode, tc.authCode)
		})
	}
}

func (s *DevAuthHandlerTestSuite) TestLockout() {
	wrong := builder.NewAuthBuilder().WithPassword("wrong-password").BuildCredentials()

	assertWireError(s.T(), s.login(wrong, nil), http.StatusUnauthorized, auth.CodeInvalidCredentials)
	assertWireError(s.T(), s.login(wrong, nil), http.StatusUnauthorized, auth.CodeInvalidCredentials)
	rec := s.login(wrong, nil)
	assertWireError(s.T(), rec, http.StatusLocked, auth.CodeAccountLocked)
	s.NotEmpty(rec.Header().Get("Retry-After"))

	// The right password does not get through while locked.
	assertWireError(s.T(), s.login(builder.NewAuthBuilder().BuildCredentials(), nil), http.StatusLocked, auth.CodeAccountLocked)
}

func (s *DevAuthHandlerTestSuite) TestSuccessResetsFailures() {
	wrong := builder.NewAuthBuilder().WithPassword("wrong-password").BuildCredentials()

	s.login(wrong, nil)
	s.login(wrong, nil)
	s.Equal(http.StatusOK, s.login(builder.NewAuthBuilder().BuildCredentials(), nil).Code)
	assertWireError(s.T(), s.login(wrong, nil), http.StatusUnauthorized, auth.CodeInvalidCredentials)
}

func (s *DevAuthHandlerTestSuite) TestMe() {
	rec := s.login(builder.NewAuthBuilder().BuildCredentials(), nil)
	var resp auth.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)

	me := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, map[string]string{"Authorization": "Bearer " + resp.Token})
	var user auth.User
	httptest.AssertSuccessResponse(s.T(), me, http.StatusOK, &user)
	s.Equal(resp.User, user)

	anonymous := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, nil)
	s.Equal(http.StatusUnauthorized, anonymous.Code)
}

func TestRateLimit(t *testing.T) {
	router := newDevAuthRouter(t, devauth.ThrottleConfig{MaxRequests: 2, RequestWindow: time.Minute})
	body := builder.NewAuthBuilder().BuildCredentials()
	fromA := map[string]string{"X-Forwarded-For": "203.0.113.7"}

	for range 2 {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/auth/login", body, fromA)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/auth/login", body, fromA)
	assertWireError(t, rec, http.StatusTooManyRequests, auth.CodeTooManyAttempts)
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

// assertWireError checks the flat {code, message} body the backend contract uses.
func assertWireError(t *testing.T, rec *nethttptest.ResponseRecorder, status int, code auth.AuthErrorCode) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	var body auth.AuthError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Code != code {
		t.Errorf("expected code %s, got %s", code, body.Code)
	}
	if body.Message == "" {
		t.Error("expected a message")
	}
}
