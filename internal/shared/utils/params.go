package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/id"
)

// ParseSIDParam reads a public id such as "prop_abc123" from the route and
// checks its prefix. label names the entity in the error message.
func ParseSIDParam(c *gin.Context, param, prefix, label string) (string, error) {
	sid := c.Param(param)
	if sid == "" {
		return "", errors.NewValidationError(label + " id is required")
	}
	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(fmt.Sprintf("malformed %s id, want %s_<id>", label, prefix))
	}
	return sid, nil
}
