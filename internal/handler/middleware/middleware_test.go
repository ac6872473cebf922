//go:build unit

package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loginflow/internal/pkg/clock"
	"loginflow/internal/pkg/config"
	"loginflow/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCustomRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(CustomRecovery(discardLogger))
	engine.GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
}

func TestErrorHandlerUnwrittenPrivateError(t *testing.T) {
	engine := gin.New()
	engine.Use(ErrorHandler())
	engine.GET("/err", func(c *gin.Context) { _ = c.Error(errors.New("hidden")) })
	engine.GET("/ok", func(*gin.Context) {})

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/err", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hidden")

	w = serve(engine, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(config.LogConfig{Level: "info", TimeZone: "UTC", TimeFormat: time.RFC3339}, &buf)
	t.Cleanup(func() { slog.SetDefault(discardLogger) })

	engine := gin.New()
	engine.Use(l.LoggingMiddleware("/health"))
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, w.Header().Get("X-Request-ID"))
	assert.Empty(t, buf.String())

	w = serve(engine, httptest.NewRequest(http.MethodGet, "/missing", nil))
	requestID := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, requestID)

	out := buf.String()
	assert.Contains(t, out, "Request started")
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "request_id="+requestID)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRequireAuth(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	issuer := jwt.NewIssuer("secret", "test", time.Minute, time.Hour, clk)
	pair, err := issuer.IssuePair(jwt.Subject{ID: "u-1", Email: "user@example.com", Role: "member"}, 0)
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/me", NewAuthMiddleware(issuer).RequireAuth(), func(c *gin.Context) {
		subject, ok := GetSubject(c)
		require.True(t, ok)
		c.String(http.StatusOK, subject)
	})

	request := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		return serve(engine, req)
	}

	w := request("Bearer " + pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-1", w.Body.String())

	w = request("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")

	w = request("Bearer " + pair.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	clk.Add(2 * time.Minute)
	w = request("Bearer " + pair.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")
}

type observed struct {
	method, path string
	status       int
}

type fakeObserver struct{ calls []observed }

func (f *fakeObserver) ObserveRequest(method, path string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{method: method, path: path, status: status})
}

func TestMetrics(t *testing.T) {
	obs := &fakeObserver{}
	engine := gin.New()
	engine.Use(Metrics(obs))
	engine.GET("/users/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	serve(engine, httptest.NewRequest(http.MethodGet, "/users/42", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, []observed{
		{method: "GET", path: "/users/:id", status: http.StatusAccepted},
		{method: "GET", path: "", status: http.StatusNotFound},
	}, obs.calls)
}
