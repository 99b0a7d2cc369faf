package models

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

// Label returns a human-readable status name.
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectPlanning:
		return "Planning"
	case ProjectInProgress:
		return "In Progress"
	case ProjectCompleted:
		return "Completed"
	case ProjectOnHold:
		return "On Hold"
	default:
		return string(s)
	}
}

// Active reports whether the project accepts new assignments.
// Completed and on-hold projects are excluded from scheduling pickers.
func (s ProjectStatus) Active() bool {
	return s == ProjectPlanning || s == ProjectInProgress
}

// ProjectStatuses lists all valid statuses in display order.
var ProjectStatuses = []ProjectStatus{
	ProjectPlanning,
	ProjectInProgress,
	ProjectCompleted,
	ProjectOnHold,
}

// Project represents a construction project owned by the backend API.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Address     string        `json:"address,omitempty"`
	Status      ProjectStatus `json:"status"`
	StartDate   string        `json:"start_date,omitempty"`
	EndDate     string        `json:"end_date,omitempty"`
}

// Member represents a user's membership in a project.
// A user appears at most once in a project's member list.
type Member struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// DisplayName returns the full name, falling back to the email address.
func (m *Member) DisplayName() string {
	if m.FullName != "" {
		return m.FullName
	}
	return m.Email
}
