package auth

import (
	"time"

	"loginflow/internal/pkg/jwt"
)

type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// LoginResponse is what the authentication backend returns on success.
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
	RedirectURL  string `json:"redirectUrl,omitempty"`
	// ExpiresAt is epoch seconds.
	ExpiresAt int64 `json:"expiresAt"`
}

func (r *LoginResponse) ExpiresAtTime() time.Time {
	return time.Unix(r.ExpiresAt, 0)
}

// SessionExpiry is ExpiresAt when the backend sent one, else the exp claim of
// the refresh token, then the access token. Zero when none is readable.
func (r *LoginResponse) SessionExpiry() time.Time {
	if r.ExpiresAt > 0 {
		return r.ExpiresAtTime()
	}
	for _, token := range []string{r.RefreshToken, r.Token} {
		if claims, err := jwt.Inspect(token); err == nil && claims.ExpiresAt != nil {
			return claims.ExpiresAt.Time
		}
	}
	return time.Time{}
}
