package domain

// Actor is the authenticated operator driving a scanning station.
type Actor struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	RoleLevel int    `json:"role_level"`
}

const adminRoleLevel = 4

// IsAdmin reports admin eligibility: the admin role itself, or any role at
// level 4 and above.
func (a *Actor) IsAdmin() bool {
	if a == nil {
		return false
	}
	return a.Role == "admin" || a.RoleLevel >= adminRoleLevel
}
