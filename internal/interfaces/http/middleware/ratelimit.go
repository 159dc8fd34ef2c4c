package middleware

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/infrastructure/ratelimit"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// KeyFunc picks the bucket a request is counted against. An empty key skips
// limiting.
type KeyFunc func(c *gin.Context) string

// ByClientIP counts requests per client address.
func ByClientIP(c *gin.Context) string {
	return c.ClientIP()
}

// ByUser counts requests per authenticated user and must run after RequireAuth.
func ByUser(c *gin.Context) string {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok && id != 0 {
			return fmt.Sprintf("user:%d", id)
		}
	}
	return ""
}

// RateLimiter turns a ratelimit.Limiter into gin middleware and sets the
// X-RateLimit-* headers.
type RateLimiter struct {
	limiter ratelimit.Limiter
	key     KeyFunc
	message string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, key KeyFunc, message string, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		key:     key,
		message: message,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.key(c)
		if key == "" {
			c.Next()
			return
		}

		res, err := rl.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// Fail open when the limiter store is unreachable.
			rl.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

		if !res.Allowed {
			rl.logger.Warnw("rate limit exceeded", "key", key, "path", c.FullPath())
			abortWithError(c, errors.NewTooManyRequestsError(rl.message))
			return
		}

		c.Next()
	}
}
