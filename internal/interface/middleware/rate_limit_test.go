package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newKeyContext(remoteAddr string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/favorites", nil)
	c.Request.RemoteAddr = remoteAddr
	return c
}

func TestKeyByUserIDUsesTokenIdentity(t *testing.T) {
	c := newKeyContext("203.0.113.9:4321")
	c.Set("userID", "64b0c3e2a1f4d5e6b7a8c9d0")

	assert.Equal(t, "rl:user:64b0c3e2a1f4d5e6b7a8c9d0", KeyByUserID(c))
}

func TestKeyByUserIDFallsBackToIP(t *testing.T) {
	c := newKeyContext("203.0.113.9:4321")

	assert.Equal(t, "rl:ip:203.0.113.9", KeyByUserID(c))

	// An empty identity value is treated the same as no identity.
	c.Set("userID", "")
	assert.Equal(t, "rl:ip:203.0.113.9", KeyByUserID(c))
}

func TestKeyByIPAndPathIncludesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var key string
	r.POST("/users/authorize", func(c *gin.Context) {
		key = KeyByIPAndPath(c)
	})

	req := httptest.NewRequest("POST", "/users/authorize", nil)
	req.RemoteAddr = "203.0.113.9:4321"
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "rl:ip:203.0.113.9:/users/authorize", key)
}
