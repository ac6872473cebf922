package httperr

import (
	"net/http"

	"loginflow/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// AbortWithAuthError answers with the AuthError's own code and message.
func AbortWithAuthError(c *gin.Context, ae *auth.AuthError) {
	if ae == nil {
		panic("AbortWithAuthError: err cannot be nil")
	}

	resp := Response{Status: StatusForCode(ae.Code)}
	resp.Error.Code = string(ae.Code)
	resp.Error.Message = ae.Message
	if len(ae.Details) > 0 {
		resp.Detail = ae.Details
	}

	abort(c, ae, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// StatusForCode is the status the gateway answers with for each auth error code.
func StatusForCode(code auth.AuthErrorCode) int {
	switch code {
	case auth.CodeInvalidCredentials, auth.CodeSessionExpired:
		return http.StatusUnauthorized
	case auth.CodeAccountDisabled:
		return http.StatusForbidden
	case auth.CodeAccountLocked:
		return http.StatusLocked
	case auth.CodeTooManyAttempts:
		return http.StatusTooManyRequests
	case auth.CodeValidationError:
		return http.StatusBadRequest
	case auth.CodeNetworkError:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
