package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

// bindJSON decodes the request body into req and writes a 400 when the body
// is malformed or fails its binding tags.
func bindJSON(c *gin.Context, req any, log logger.Interface) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warnw("invalid request body", "path", c.FullPath(), "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", utils.DescribeBindingError(err)))
		return false
	}
	return true
}
