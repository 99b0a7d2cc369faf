package models

// Assignment represents a scheduling record linking a user to a
// project for a date range. Overlap validation is left to the backend.
type Assignment struct {
	ID        int64  `json:"id,omitempty"`
	UserID    int64  `json:"user_id"`
	ProjectID int64  `json:"project_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
