package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type policyKey struct {
	role     authorization.UserRole
	resource authorization.Resource
	action   authorization.Action
}

type stubEnforcer struct {
	allowed map[policyKey]bool
	err     error
}

func (e *stubEnforcer) Enforce(role authorization.UserRole, resource authorization.Resource, action authorization.Action) (bool, error) {
	if e.err != nil {
		return false, e.err
	}
	return e.allowed[policyKey{role, resource, action}], nil
}

func moderationPolicy() *stubEnforcer {
	return &stubEnforcer{allowed: map[policyKey]bool{
		{authorization.RoleStaff, authorization.ResourceProperty, authorization.ActionModerate}: true,
		{authorization.RoleAdmin, authorization.ResourceProperty, authorization.ActionModerate}: true,
	}}
}

func TestPermissionMiddleware_RequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		enforcer   *stubEnforcer
		role       authorization.UserRole
		anonymous  bool
		wantStatus int
		wantBody   string
	}{
		{name: "staff allowed", enforcer: moderationPolicy(), role: authorization.RoleStaff, wantStatus: http.StatusOK},
		{name: "admin allowed", enforcer: moderationPolicy(), role: authorization.RoleAdmin, wantStatus: http.StatusOK},
		{
			name:       "user forbidden",
			enforcer:   moderationPolicy(),
			role:       authorization.RoleUser,
			wantStatus: http.StatusForbidden,
			wantBody:   "Required roles: staff, admin",
		},
		{name: "anonymous", enforcer: moderationPolicy(), anonymous: true, wantStatus: http.StatusUnauthorized},
		{name: "policy store error", enforcer: &stubEnforcer{err: assert.AnError}, role: authorization.RoleAdmin, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPermissionMiddleware(tt.enforcer, logger.NewNopLogger())

			r := gin.New()
			r.POST("/approve",
				func(c *gin.Context) {
					if !tt.anonymous {
						c.Set(constants.ContextKeyUserID, uint(5))
						c.Set(constants.ContextKeyUserRole, tt.role)
					}
				},
				pm.RequirePermission(authorization.ResourceProperty, authorization.ActionModerate),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/approve", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
