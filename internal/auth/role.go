package auth

import "fmt"

// Role is the closed set of roles recognized by the authorization
// boundary. Role names stored in the database and carried in token
// claims parse into this type; anything else is rejected.
type Role string

const (
	RoleAdministrator  Role = "Administrator"
	RoleEmployee       Role = "Employee"
	RoleFarmer         Role = "Farmer"
	RoleEnergyProvider Role = "EnergyProvider"
)

// AllRoles lists every recognized role, used by the seed tool and by
// exhaustiveness tests.
var AllRoles = []Role{RoleAdministrator, RoleEmployee, RoleFarmer, RoleEnergyProvider}

// ParseRole maps a role name to its Role value.
func ParseRole(name string) (Role, error) {
	switch Role(name) {
	case RoleAdministrator, RoleEmployee, RoleFarmer, RoleEnergyProvider:
		return Role(name), nil
	}
	return "", fmt.Errorf("unknown role %q", name)
}

func (r Role) String() string {
	return string(r)
}

// Is reports whether r is one of the given roles.
func (r Role) Is(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// DashboardRoute returns the post-login landing route for the role.
// Farmers without a profile yet are routed to profile creation;
// everyone outside the staff roles lands on home.
func (r Role) DashboardRoute(hasProfile bool) string {
	switch r {
	case RoleFarmer:
		if hasProfile {
			return "/api/farmer/dashboard"
		}
		return "/api/farmer/profile/new"
	case RoleEmployee, RoleAdministrator:
		return "/api/employee/dashboard"
	case RoleEnergyProvider:
		return "/"
	default:
		return "/"
	}
}
