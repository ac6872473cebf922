package response

import (
	"loginflow/internal/domain/auth"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// LoginResponse never carries tokens; those travel as HttpOnly cookies.
type LoginResponse struct {
	RedirectURL string       `json:"redirectUrl"`
	User        UserResponse `json:"user"`
	ExpiresAt   int64        `json:"expiresAt"`
}

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewLoginResponse(session *auth.LoginResponse, redirectURL string) (LoginResponse, error) {
	var user UserResponse
	if err := copier.Copy(&user, &session.User); err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{
		RedirectURL: redirectURL,
		User:        user,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

func NewFieldErrors(errs []*auth.FieldError) []FieldErrorResponse {
	out := make([]FieldErrorResponse, 0, len(errs))
	for _, fe := range errs {
		out = append(out, FieldErrorResponse{
			Field:   string(fe.Field),
			Type:    string(fe.Type),
			Message: fe.Message,
		})
	}
	return out
}
