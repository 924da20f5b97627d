package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jericho-forum/jericho/pkg/helpers"
)

func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString("userID"),
			"userName": c.GetString("userName"),
		})
	})
	return r
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newAuthRouter(jwt)

	token, _, err := jwt.Generate("alice", "64b0c3e2a1f4d5e6b7a8c9d0")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "64b0c3e2a1f4d5e6b7a8c9d0")
	assert.Contains(t, w.Body.String(), "alice")
}

func TestAuthRejects(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	other, _, err := helpers.NewJWTManager("other-secret", time.Hour).Generate("alice", "id")
	require.NoError(t, err)
	expired, _, err := helpers.NewJWTManager("test-secret", -time.Minute).Generate("alice", "id")
	require.NoError(t, err)

	r := newAuthRouter(jwt)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"wrong key", "Bearer " + other},
		{"expired", "Bearer " + expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
