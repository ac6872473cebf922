//go:build unit

package builder

import (
	"time"

	"loginflow/internal/domain/auth"
	reqdto "loginflow/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email      string
	Password   string
	RememberMe bool
	Redirect   string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) Remembered() *AuthBuilder {
	a.RememberMe = true
	return a
}

func (a *AuthBuilder) WithRedirect(redirect string) *AuthBuilder {
	a.Redirect = redirect
	return a
}

func (a *AuthBuilder) BuildCredentials() auth.Credentials {
	return auth.Credentials{
		Email:      a.Email,
		Password:   a.Password,
		RememberMe: a.RememberMe,
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:      a.Email,
		Password:   a.Password,
		RememberMe: a.RememberMe,
		Redirect:   a.Redirect,
	}
}

type LoginResponseBuilder struct {
	resp auth.LoginResponse
}

func NewLoginResponseBuilder() *LoginResponseBuilder {
	return &LoginResponseBuilder{
		resp: auth.LoginResponse{
			Token:        "test-access-token",
			RefreshToken: "test-refresh-token",
			User: auth.User{
				ID:    "6f1c2f0e-8d7b-4c4e-9d1a-3e2b1a0c9f11",
				Email: "test@example.com",
				Name:  "Test User",
				Role:  "viewer",
			},
			ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
		},
	}
}

func (b *LoginResponseBuilder) WithRedirectURL(url string) *LoginResponseBuilder {
	b.resp.RedirectURL = url
	return b
}

func (b *LoginResponseBuilder) WithExpiresAt(t time.Time) *LoginResponseBuilder {
	b.resp.ExpiresAt = t.Unix()
	return b
}

func (b *LoginResponseBuilder) Build() *auth.LoginResponse {
	resp := b.resp
	return &resp
}
