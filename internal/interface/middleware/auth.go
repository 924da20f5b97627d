package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jericho-forum/jericho/pkg/helpers"
	"github.com/jericho-forum/jericho/pkg/response"
)

// Auth validates the bearer token and attaches the caller's identity to the
// context under userID and userName.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "Missing Authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			unauthorized(c, "Invalid Authorization header")
			return
		}

		claims, err := jwt.Parse(parts[1])
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set("userID", claims.SessionID)
		c.Set("userName", claims.Subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Build[any](c, http.StatusUnauthorized, msg, nil))
}
