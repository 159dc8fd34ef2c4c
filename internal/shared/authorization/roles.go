package authorization

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaffOrAdmin reports whether the role may moderate listings and see
// non-approved statuses.
func (r UserRole) IsStaffOrAdmin() bool {
	return r == RoleAdmin || r == RoleStaff
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleUser
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
