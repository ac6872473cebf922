//go:build unit

package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loginflow/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCookies(t *testing.T, cfg config.CookieConfig, tokens Tokens, now time.Time) map[string]*http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	SetTokenCookies(c, cfg, tokens, now)

	got := map[string]*http.Cookie{}
	for _, ck := range w.Result().Cookies() {
		got[ck.Name] = ck
	}
	return got
}

func TestSetTokenCookiesPersistent(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := config.CookieConfig{Domain: "example.com", Secure: true, SameSite: "Strict"}

	got := setCookies(t, cfg, Tokens{Access: "a", Refresh: "r", ExpiresAt: now.Add(time.Hour), Persistent: true}, now)

	require.Contains(t, got, AccessTokenCookieName)
	require.Contains(t, got, RefreshTokenCookieName)
	access := got[AccessTokenCookieName]
	assert.Equal(t, "a", access.Value)
	assert.Equal(t, 3600, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, "r", got[RefreshTokenCookieName].Value)
}

func TestSetTokenCookiesSession(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got := setCookies(t, config.CookieConfig{}, Tokens{Access: "a", Refresh: "r", ExpiresAt: now.Add(time.Hour)}, now)

	assert.Equal(t, 0, got[AccessTokenCookieName].MaxAge)
	assert.Equal(t, 0, got[RefreshTokenCookieName].MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, got[AccessTokenCookieName].SameSite)
}

func TestSetTokenCookiesExpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got := setCookies(t, config.CookieConfig{}, Tokens{Access: "a", ExpiresAt: now.Add(-time.Minute), Persistent: true}, now)

	assert.Equal(t, -1, got[AccessTokenCookieName].MaxAge)
}
