package authorization

// Resource and Action name the role-gated operations checked by the policy
// enforcer. Ownership rules are separate, see IsOwnerOrAdmin.
type (
	Resource string
	Action   string
)

const (
	ResourceProperty Resource = "property"
	ResourceOrder    Resource = "order"
	ResourceUser     Resource = "user"
	ResourceStats    Resource = "stats"
)

const (
	ActionModerate Action = "moderate"
	ActionList     Action = "list"
	ActionMarkPaid Action = "mark_paid"
	ActionRead     Action = "read"
	ActionToggle   Action = "toggle_lock"
)

// Policy grants a role one action on a resource.
type Policy struct {
	Role     UserRole
	Resource Resource
	Action   Action
}

// DefaultPolicies is the built-in policy set. Admins inherit every staff
// policy through the role hierarchy.
func DefaultPolicies() []Policy {
	return []Policy{
		{RoleStaff, ResourceProperty, ActionModerate},
		{RoleStaff, ResourceOrder, ActionList},
		{RoleStaff, ResourceOrder, ActionMarkPaid},
		{RoleStaff, ResourceStats, ActionRead},
		{RoleAdmin, ResourceUser, ActionList},
		{RoleAdmin, ResourceUser, ActionToggle},
	}
}
