package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

// callerFromContext returns the identity the auth middleware stored. Zero
// values mean an anonymous request.
func callerFromContext(c *gin.Context) (uint, authorization.UserRole) {
	var userID uint
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		userID, _ = v.(uint)
	}
	role := authorization.RoleUser
	if v, ok := c.Get(constants.ContextKeyUserRole); ok {
		if r, ok := v.(authorization.UserRole); ok {
			role = r
		}
	}
	return userID, role
}

// requireCaller writes a 401 and returns false for anonymous requests.
func requireCaller(c *gin.Context) (uint, authorization.UserRole, bool) {
	userID, role := callerFromContext(c)
	if userID == 0 {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
		return 0, "", false
	}
	return userID, role, true
}
