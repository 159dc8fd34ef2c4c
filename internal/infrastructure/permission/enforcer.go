package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// Subjects are role names. g(admin, staff) gives admins every staff right.
const roleModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Enforcer decides whether a role may perform an action on a resource.
// Rules live in the casbin_rule table so operators can grant extra rights
// without a deploy.
type Enforcer struct {
	mu     sync.RWMutex
	casbin *casbin.Enforcer
	log    logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("casbin gorm adapter: %w", err)
	}
	m, err := model.NewModelFromString(roleModel)
	if err != nil {
		return nil, fmt.Errorf("casbin model: %w", err)
	}
	ce, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("casbin enforcer: %w", err)
	}
	if err := ce.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load casbin rules: %w", err)
	}
	return &Enforcer{casbin: ce, log: log}, nil
}

func (e *Enforcer) Enforce(role authorization.UserRole, resource authorization.Resource, action authorization.Action) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ok, err := e.casbin.Enforce(string(role), string(resource), string(action))
	if err != nil {
		e.log.Errorw("casbin enforce failed", "role", role, "resource", resource, "action", action, "error", err)
		return false, fmt.Errorf("check %s %s for %s: %w", action, resource, role, err)
	}
	return ok, nil
}

// SeedDefaults inserts the built-in rules and admin inheritance. Rules that
// already exist are skipped, so it runs on every boot.
func (e *Enforcer) SeedDefaults() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range authorization.DefaultPolicies() {
		ok, err := e.casbin.AddPolicy(string(p.Role), string(p.Resource), string(p.Action))
		if err != nil {
			return fmt.Errorf("add rule %s %s %s: %w", p.Role, p.Resource, p.Action, err)
		}
		if ok {
			added++
		}
	}
	if _, err := e.casbin.AddGroupingPolicy(string(authorization.RoleAdmin), string(authorization.RoleStaff)); err != nil {
		return fmt.Errorf("add admin inheritance: %w", err)
	}

	if added > 0 {
		e.log.Infow("access rules seeded", "added", added)
	}
	return nil
}
