package devauth

import (
	"net/http"
	"strconv"
	"strings"

	"loginflow/internal/domain/auth"
	"loginflow/internal/handler/httperr"
	"loginflow/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login answers with a LoginResponse, or with {code, message} and the status
// the gateway's client maps back to the same code.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeAuthError(c, auth.NewAuthError(auth.CodeValidationError).WithCause(err))
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeAuthError(c, auth.NewAuthError(auth.CodeValidationError))
		return
	}

	resp, ae := h.service.Authenticate(LoginInput{
		ClientIP: c.ClientIP(),
		Credentials: auth.Credentials{
			Email:      req.Email,
			Password:   req.Password,
			RememberMe: req.RememberMe,
		},
	})
	if ae != nil {
		writeAuthError(c, ae)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the profile for the access token's subject.
func (h *Handler) Me(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		writeAuthError(c, auth.NewAuthError(auth.CodeInvalidCredentials))
		return
	}

	user, err := h.service.User(subject)
	if err != nil {
		writeAuthError(c, auth.NewAuthError(auth.CodeSessionExpired).WithCause(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

// writeAuthError uses the flat {code, message, details} body of the wire contract.
func writeAuthError(c *gin.Context, ae *auth.AuthError) {
	if retry, ok := ae.Details["retryAfter"].(int); ok {
		c.Header("Retry-After", strconv.Itoa(retry))
	}
	status := httperr.StatusForCode(ae.Code)
	if ae.Code == auth.CodeServerError {
		status = http.StatusInternalServerError
	}
	_ = c.Error(ae)
	c.AbortWithStatusJSON(status, ae)
}
