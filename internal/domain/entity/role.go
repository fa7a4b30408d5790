package entity

// Role is carried by host session tokens.
type Role string

const (
	// RoleAdmin manages guest access: tokens, devices and quotas.
	RoleAdmin Role = "admin"
	// RoleViewer looks guests up at the door without changing anything.
	RoleViewer Role = "viewer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// Grants reports whether r may act as required. Admin implies viewer.
func (r Role) Grants(required Role) bool {
	if r == required {
		return r.IsValid()
	}

	return r == RoleAdmin && required == RoleViewer
}

// ParseRole maps a configured role name, defaulting to admin when empty.
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleAdmin, true
	}
	r := Role(s)

	return r, r.IsValid()
}

type Roles []Role

// Allow reports whether any role grants required.
func (rs Roles) Allow(required Role) bool {
	for _, r := range rs {
		if r.Grants(required) {
			return true
		}
	}

	return false
}

// ToStrings converts Roles for the JWT roles claim.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings drops unknown role names from a roles claim.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
