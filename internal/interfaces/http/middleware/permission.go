package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type policyEnforcer interface {
	Enforce(role authorization.UserRole, resource authorization.Resource, action authorization.Action) (bool, error)
}

// PermissionMiddleware gates routes on the caller's role through the
// role × resource × action policy. It must run after RequireAuth.
type PermissionMiddleware struct {
	enforcer policyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer policyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource authorization.Resource, action authorization.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			abortWithError(c, errors.NewUnauthorizedError("Not authenticated"))
			return
		}
		role, _ := c.Get(constants.ContextKeyUserRole)
		userRole, _ := role.(authorization.UserRole)

		allowed, err := m.enforcer.Enforce(userRole, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
			abortWithError(c, errors.NewInternalError("Permission check failed"))
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", userID, "role", userRole, "resource", resource, "action", action)
			abortWithError(c, authorization.RequireRoles(userRole, rolesAllowed(m.enforcer, resource, action)...))
			return
		}

		c.Next()
	}
}

// rolesAllowed lists the roles the policy grants, used to name the required
// set in the forbidden message.
func rolesAllowed(e policyEnforcer, resource authorization.Resource, action authorization.Action) []authorization.UserRole {
	var out []authorization.UserRole
	for _, r := range []authorization.UserRole{authorization.RoleUser, authorization.RoleStaff, authorization.RoleAdmin} {
		if ok, err := e.Enforce(r, resource, action); err == nil && ok {
			out = append(out, r)
		}
	}
	return out
}
