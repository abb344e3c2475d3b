package account

import types "github.com/fatflowers/membership/pkg/types"

// AssignRole decides the role of a new identity from the number of identities that
// registered before it: the very first becomes admin, everyone after is a user.
func AssignRole(existingIdentityCount int64) types.Role {
	if existingIdentityCount == 0 {
		return types.RoleAdmin
	}
	return types.RoleUser
}
