package models

// Role represents a user's permission level.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProjectManager Role = "project_manager"
	RoleTeamLeader     Role = "team_leader"
	RoleWorker         Role = "worker"
)

// Label returns a human-readable role name.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleProjectManager:
		return "Project Manager"
	case RoleTeamLeader:
		return "Team Leader"
	case RoleWorker:
		return "Worker"
	default:
		return string(r)
	}
}

// User represents a system user as returned by the backend API.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// DisplayName returns the full name, falling back to the email address.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// IsAdmin returns true if user has admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ParseRole converts a string to Role.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "project_manager":
		return RoleProjectManager
	case "team_leader":
		return RoleTeamLeader
	default:
		return RoleWorker
	}
}
