package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

const maxRequestIDLen = 64

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(constants.HeaderXRequestID)
		if rid == "" || len(rid) > maxRequestIDLen {
			rid = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, rid)
		c.Header(constants.HeaderXRequestID, rid)
		c.Next()
	}
}

// Logger writes one access line per request. Level follows the status
// class so 5xx stand out in production where debug is off.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"ip", c.ClientIP(),
			"bytes", c.Writer.Size(),
			"request_id", c.GetString(constants.ContextKeyRequestID),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, "query", q)
		}
		if uid, ok := c.Get(constants.ContextKeyUserID); ok {
			fields = append(fields, "user_id", uid)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request served", fields...)
		}
	}
}
