package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowFunc reports whether a request bypasses rate limiting entirely.
type AllowFunc func(c *gin.Context) bool

// AllowPrivateIP skips rate limiting for loopback and RFC1918 addresses,
// which keeps local development and health probes unthrottled.
func AllowPrivateIP(c *gin.Context) bool {
	ip := net.ParseIP(ClientIPFrom(c))
	if ip == nil {
		return false
	}
	return ip.IsLoopback() || ip.IsPrivate()
}
