package request

import (
	"loginflow/internal/domain/auth"
	"loginflow/internal/usecase"
)

// LoginRequest carries the form as typed. Field rules are applied by the
// login form itself so the client sees the same messages it would locally.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
	Redirect   string `json:"redirect,omitempty"`
}

func (r LoginRequest) ToDomain() usecase.LoginRequest {
	return usecase.LoginRequest{
		Credentials: auth.Credentials{
			Email:      r.Email,
			Password:   r.Password,
			RememberMe: r.RememberMe,
		},
		Redirect: r.Redirect,
	}
}
