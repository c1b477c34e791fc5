package schema

import "strings"

// Role identifies the semantic role a column name implies, independent of
// its declared kind. Column names double as a lightweight type hint: a
// string column named "city" gets realistic city values rather than
// random alphanumerics.
type Role int

const (
	RoleNone Role = iota
	RoleName
	RoleCity
	RolePhone
	RoleEmail
)

// roleRule maps a name substring to a semantic role.
type roleRule struct {
	substring string
	role      Role
}

// roleRules is the ordered rule list evaluated against lowercased column
// names. First match wins, so "name" outranks later rules for a column
// like "name_city".
var roleRules = []roleRule{
	{"name", RoleName},
	{"city", RoleCity},
	{"phone", RolePhone},
	{"mobile", RolePhone},
	{"email", RoleEmail},
}

// RoleOf returns the semantic role implied by a column name, or RoleNone.
func RoleOf(name string) Role {
	lower := strings.ToLower(name)
	for _, r := range roleRules {
		if strings.Contains(lower, r.substring) {
			return r.role
		}
	}
	return RoleNone
}
