package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP resolves the client IP from proxy headers and stores it in the context.
// CF-Connecting-IP wins, then the first entry of X-Forwarded-For, then the
// socket address.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.GetHeader("CF-Connecting-IP")
		if ip == "" {
			if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
				parts := strings.Split(fwd, ",")
				ip = strings.TrimSpace(parts[0])
			}
		}
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set("real_ip", ip)
		c.Next()
	}
}

// ClientIPFrom returns the resolved real IP, falling back to Gin's ClientIP.
func ClientIPFrom(c *gin.Context) string {
	if v, ok := c.Get("real_ip"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return c.ClientIP()
}
