package auth

import "cesizen/internal/model"

// roleHierarchy is the fixed rank order, lowest first. A role's privilege
// is its index; holding a higher rank satisfies every lower requirement.
var roleHierarchy = []string{
	model.RoleUser,
	model.RoleAdmin,
}

// Principal is the resolved identity of the caller, attached by the auth
// middleware and passed explicitly into every service call.
type Principal struct {
	UserID   uint
	Email    string
	RoleName string
}

// HasRole reports whether the principal's role satisfies the required
// role under the permissive hierarchy. Role names absent from the
// hierarchy index to -1 and fail closed, on either side.
func HasRole(p *Principal, required string) bool {
	if p == nil {
		return false
	}
	callerIdx := roleIndex(p.RoleName)
	requiredIdx := roleIndex(required)
	if callerIdx < 0 || requiredIdx < 0 {
		return false
	}
	return callerIdx >= requiredIdx
}

func roleIndex(name string) int {
	for i, r := range roleHierarchy {
		if r == name {
			return i
		}
	}
	return -1
}
