package backend

import (
	"context"
	"net/http"

	"github.com/good-yellow-bee/siteboard/internal/models"
)

// CreateAssignmentRequest schedules a user on a project for a date
// range. Overlap checks are the backend's responsibility.
type CreateAssignmentRequest struct {
	UserID    int64  `json:"user_id"`
	ProjectID int64  `json:"project_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// CreateAssignment creates a scheduling record.
func (c *Client) CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := c.doJSON(ctx, "assignments.create", http.MethodPost, "/assignments/", req, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}
