package cookie

import (
	"net/http"
	"strings"
	"time"

	"loginflow/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

// Tokens carries what the gateway stores after a successful login.
// ExpiresAt is ignored unless Persistent is set; otherwise the cookies end
// with the browser session.
type Tokens struct {
	Access     string
	Refresh    string
	ExpiresAt  time.Time
	Persistent bool
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, tokens Tokens, now time.Time) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	maxAge := 0
	if tokens.Persistent {
		maxAge = int(tokens.ExpiresAt.Sub(now).Seconds())
		if maxAge <= 0 {
			// Already expired; let the browser drop it immediately.
			maxAge = -1
		}
	}

	c.SetCookie(AccessTokenCookieName, tokens.Access, maxAge, "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, tokens.Refresh, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(AccessTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(sameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
