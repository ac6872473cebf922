package middleware

import (
	"errors"
	"strings"

	"loginflow/internal/domain/auth"
	"loginflow/internal/handler/httperr"
	"loginflow/internal/pkg/cookie"
	"loginflow/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	Validate(token string, kind jwt.Kind) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxSubjectKey = "subject"
	ctxEmailKey   = "email"
	ctxRoleKey    = "user_role"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts an access token from the cookie or a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithAuthError(c, auth.NewAuthError(auth.CodeInvalidCredentials).WithCause(jwt.ErrInvalidToken))
			return
		}

		claims, err := m.tokenValidator.Validate(token, jwt.KindAccess)
		if err != nil {
			code := auth.CodeInvalidCredentials
			if errors.Is(err, jwt.ErrExpiredToken) {
				code = auth.CodeSessionExpired
			}
			httperr.AbortWithAuthError(c, auth.NewAuthError(code).WithCause(err))
			return
		}

		c.Set(ctxSubjectKey, claims.Subject)
		c.Set(ctxEmailKey, claims.Email)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.Subject,
			"role":    claims.Role,
		})
		c.Next()
	}
}

func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}

	id, ok := subject.(string)
	return id, ok && id != ""
}
