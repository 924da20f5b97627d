package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jericho-forum/jericho/pkg/response"
)

// KeyFunc derives the rate limit bucket key for a request.
type KeyFunc func(c *gin.Context) string

// KeyByIP buckets requests by client address.
func KeyByIP(c *gin.Context) string {
	return "rl:ip:" + ClientIPFrom(c)
}

// KeyByIPAndPath buckets requests by client address and route path, so a
// burst against one endpoint does not exhaust the budget for the others.
func KeyByIPAndPath(c *gin.Context) string {
	return "rl:ip:" + ClientIPFrom(c) + ":" + c.FullPath()
}

// KeyByUserID buckets authenticated requests by user, falling back to IP
// when no identity is attached.
func KeyByUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return "rl:user:" + s
		}
	}
	return KeyByIP(c)
}

// incrExpireScript increments the bucket counter and sets the window TTL on
// first increment. Returns the current count and remaining TTL in ms.
var incrExpireScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {count, ttl}
`)

// RateLimit enforces a fixed-window limit of max requests per window using a
// shared Redis counter. Redis failures fail open so the API stays available
// when the limiter backend is down.
func RateLimit(rdb *redis.Client, logger *logrus.Logger, max int, window time.Duration, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		if allow != nil && allow(c) {
			c.Next()
			return
		}

		key := keyFn(c)
		res, err := incrExpireScript.Run(c.Request.Context(), rdb, []string{key}, window.Milliseconds()).Result()
		if err != nil {
			logger.WithError(err).Warn("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		vals, ok := res.([]interface{})
		if !ok || len(vals) != 2 {
			c.Next()
			return
		}
		count := toInt(vals[0])
		ttlMs := toInt(vals[1])

		remaining := max - count
		if remaining < 0 {
			remaining = 0
		}
		resetSec := (ttlMs + 999) / 1000

		c.Header("X-RateLimit-Limit", strconv.Itoa(max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > max {
			c.Header("Retry-After", strconv.Itoa(resetSec))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Build[any](c, http.StatusTooManyRequests, "Too many requests", gin.H{
				"retry_after_seconds": resetSec,
			}))
			return
		}
		c.Next()
	}
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case string:
		i, _ := strconv.Atoi(n)
		return i
	default:
		return 0
	}
}
