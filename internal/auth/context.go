package auth

import "github.com/gin-gonic/gin"

const principalKey = "principal"

// Principal is the authenticated admin for a single request.
// It is derived from a fresh database read and never cached across requests.
type Principal struct {
	ID          string
	Username    string
	Role        Role
	Permissions Permissions
}

// IsSuperAdmin reports whether the principal has the super admin role.
func (p Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}

// Can reports whether the principal holds perm.
func (p Principal) Can(perm Permission) bool {
	return EffectivePermissions(p.Role, p.Permissions).Has(perm)
}

// SetPrincipal stores the principal in the gin context.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the authenticated admin, if any.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
