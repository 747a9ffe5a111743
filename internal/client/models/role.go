package models

import "strings"

// Role is the authenticated user's role as issued by the auth endpoint.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
)

// Roles lists the roles in the order the login prompt offers them.
var Roles = []Role{RoleAdmin, RoleDoctor, RolePatient}

// ParseRole matches s case-insensitively against the known roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return r, true
	}
	return "", false
}

// LoginRoute is the route of the login page.
const LoginRoute = "/"

// DashboardPath returns the route segment of the role's dashboard, or ""
// for an unknown role.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "adminDashboard"
	case RoleDoctor:
		return "doctorDashboard"
	case RolePatient:
		return "patientDashboard"
	}
	return ""
}

// DashboardRoute returns "/<role>Dashboard/<token>", or "" for an unknown role.
func DashboardRoute(r Role, token string) string {
	p := r.DashboardPath()
	if p == "" {
		return ""
	}
	return "/" + p + "/" + token
}

// RoleForDashboard is the inverse of DashboardPath.
func RoleForDashboard(path string) (Role, bool) {
	for _, r := range Roles {
		if r.DashboardPath() == path {
			return r, true
		}
	}
	return "", false
}
