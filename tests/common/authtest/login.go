//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"campreserve/internal/handler/dto/request"
	"campreserve/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser authenticates through the real login endpoint and returns the
// bearer token from the response body.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		AccessToken string `json:"access_token"`
	}
	err := httptest.DecodeResponseBody(t, w.Body, &body)
	require.NoError(t, err)
	require.NotEmpty(t, body.AccessToken, "Access token not found in response")

	return body.AccessToken
}
