package rbac

import "strings"

// Policy maps a role to the permissions it holds. An entry of "*" grants
// everything; a trailing "*" grants a whole resource, e.g. "history:*".
type Policy map[string][]string

// Allows reports whether role holds perm.
func (p Policy) Allows(role, perm string) bool {
	for _, granted := range p[role] {
		if granted == perm || granted == "*" {
			return true
		}
		if prefix, ok := strings.CutSuffix(granted, "*"); ok && strings.HasPrefix(perm, prefix) {
			return true
		}
	}
	return false
}

// AllowsAny reports whether role holds at least one of perms.
func (p Policy) AllowsAny(role string, perms ...string) bool {
	for _, perm := range perms {
		if p.Allows(role, perm) {
			return true
		}
	}
	return false
}
