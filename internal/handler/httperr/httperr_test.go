//go:build unit

package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"loginflow/internal/domain/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func TestAbortWithError(t *testing.T) {
	c, w := newContext()

	AbortWithError(c, http.StatusBadRequest, errors.New("bad json"), "Invalid request format", nil)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, c.Errors, 1)
	assert.JSONEq(t, `{"error":{"message":"Invalid request format"}}`, w.Body.String())
}

func TestAbortWithAuthError(t *testing.T) {
	c, w := newContext()

	AbortWithAuthError(c, &auth.AuthError{Code: auth.CodeAccountLocked, Message: "Locked", Details: map[string]any{"retryAfter": 900}})

	assert.Equal(t, http.StatusLocked, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACCOUNT_LOCKED", resp.Error.Code)
	assert.Equal(t, "Locked", resp.Error.Message)
	assert.Equal(t, map[string]any{"retryAfter": float64(900)}, resp.Detail)
}

func TestAbortPanicsOnNil(t *testing.T) {
	c, _ := newContext()
	assert.Panics(t, func() { AbortWithError(c, http.StatusInternalServerError, nil, "x", nil) })
	assert.Panics(t, func() { AbortWithAuthError(c, nil) })
}

func TestStatusForCode(t *testing.T) {
	cases := map[auth.AuthErrorCode]int{
		auth.CodeInvalidCredentials: http.StatusUnauthorized,
		auth.CodeSessionExpired:     http.StatusUnauthorized,
		auth.CodeAccountDisabled:    http.StatusForbidden,
		auth.CodeAccountLocked:      http.StatusLocked,
		auth.CodeTooManyAttempts:    http.StatusTooManyRequests,
		auth.CodeValidationError:    http.StatusBadRequest,
		auth.CodeNetworkError:       http.StatusGatewayTimeout,
		auth.CodeServerError:        http.StatusBadGateway,
		auth.AuthErrorCode("NOPE"):  http.StatusBadGateway,
	}
	for code, want := range cases {
		assert.Equal(t, want, StatusForCode(code), string(code))
	}
}
