package middleware

import (
	stderrors "errors"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

// Recovery turns handler panics into the 500 envelope. Panics caused by a
// client hanging up are logged and dropped since nobody is listening.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if clientGone(recovered) {
			log.Warnw("client disconnected mid-response",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", recovered)
			c.Abort()
			return
		}

		log.Errorw("handler panicked",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(constants.ContextKeyRequestID),
			"headers", redactedHeaders(c.Request.Header),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponseWithError(c, errors.NewInternalError(constants.ErrMsgInternalServerError))
		c.Abort()
	})
}

func clientGone(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !stderrors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if stderrors.As(opErr, &sysErr) {
		return stderrors.Is(sysErr, syscall.EPIPE) || stderrors.Is(sysErr, syscall.ECONNRESET)
	}
	return false
}

// redactedHeaders hides credentials before headers reach the log.
func redactedHeaders(h http.Header) []string {
	out := make([]string, 0, len(h))
	for name, values := range h {
		switch name {
		case constants.HeaderAuthorization, "Cookie":
			out = append(out, name+": *")
		default:
			out = append(out, name+": "+strings.Join(values, ", "))
		}
	}
	return out
}

// NotFound answers unknown routes with the JSON error envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("Route not found", c.Request.Method+" "+c.Request.URL.Path))
	}
}
