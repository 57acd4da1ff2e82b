package domain

// Role is the coarse authorization tag carried in token claims.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleEmployee
}

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// Actor is the verified caller identity extracted from token claims and
// passed explicitly into every service call. There is no ambient session.
type Actor struct {
	EmployeeID   uint
	EmployeeCode string
	Role         Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor owns the employee-scoped resource.
func (a Actor) Owns(employeeID uint) bool {
	return a.EmployeeID == employeeID
}
