package authorization

import (
	"fmt"
	"strings"

	"github.com/nhadat/marketplace/internal/shared/errors"
)

// RequireRoles returns a forbidden error naming both the required set and the
// caller's role when actual is not one of allowed.
func RequireRoles(actual UserRole, allowed ...UserRole) error {
	for _, r := range allowed {
		if actual == r {
			return nil
		}
	}
	names := make([]string, 0, len(allowed))
	for _, r := range allowed {
		names = append(names, r.String())
	}
	return errors.NewForbiddenError(
		fmt.Sprintf("Insufficient permissions. Required roles: %s. Your role: %s", strings.Join(names, ", "), actual),
	)
}

// IsOwnerOrAdmin is true for admins and for the resource owner.
func IsOwnerOrAdmin(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID != 0 && userID == resourceOwnerID
}
