package authorization

// UserRole is the platform-wide role attached to every account.
type UserRole string

const (
	// RoleSuperAdmin operates the SaaS platform itself.
	RoleSuperAdmin UserRole = "super_admin"
	// RoleReseller manages a portfolio of condominiums without belonging to one.
	RoleReseller UserRole = "reseller"
	// RoleCondoAdmin administers a single condominium.
	RoleCondoAdmin UserRole = "condo_admin"
	// RoleResident is a unit owner or inhabitant.
	RoleResident UserRole = "resident"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleReseller, RoleCondoAdmin, RoleResident:
		return true
	}
	return false
}

// ParseUserRole maps a stored role string to a UserRole, defaulting unknown
// values to the least privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleResident
}
