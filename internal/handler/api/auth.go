package api

import (
	"log/slog"
	"net/http"

	reqdto "loginflow/internal/handler/dto/request"
	resdto "loginflow/internal/handler/dto/response"
	"loginflow/internal/handler/httperr"
	"loginflow/internal/pkg/clock"
	"loginflow/internal/pkg/config"
	"loginflow/internal/pkg/cookie"
	"loginflow/internal/pkg/errs"
	"loginflow/internal/usecase"
	"loginflow/internal/usecase/loginform"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	loginUseCase usecase.LoginUseCase
	cookieCfg    config.CookieConfig
	clock        clock.Clock
	logger       *slog.Logger
}

func NewAuthHandler(loginUseCase usecase.LoginUseCase, cfg config.Config, clk clock.Clock, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUseCase,
		cookieCfg:    cfg.Cookie,
		clock:        clk,
		logger:       logger,
	}
}

// @Summary Sign in
// @Description Validates the form, authenticates against the auth backend and sets token cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login form"
// @Param redirect query string false "Requested post-login destination"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 423 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.Redirect == "" {
		req.Redirect = c.Query("redirect")
	}

	result, err := h.loginUseCase.Login(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	switch result.Outcome {
	case loginform.OutcomeInvalid:
		httperr.AbortWithError(c, http.StatusUnprocessableEntity,
			errs.New("login form failed validation"), "Please correct the highlighted fields",
			resdto.NewFieldErrors(result.FieldErrors))
		return
	case loginform.OutcomeFailed:
		httperr.AbortWithAuthError(c, result.AuthError)
		return
	}

	body, err := resdto.NewLoginResponse(result.Session, result.RedirectURL)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, cookie.Tokens{
		Access:     result.Session.Token,
		Refresh:    result.Session.RefreshToken,
		ExpiresAt:  result.Session.SessionExpiry(),
		Persistent: req.RememberMe,
	}, h.clock.Now())

	c.JSON(http.StatusOK, body)
}

// @Summary Sign out
// @Description Clears the token cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
