package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/good-yellow-bee/siteboard/internal/models"
)

// UpdateProjectRequest carries the editable project fields.
type UpdateProjectRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Address     string               `json:"address"`
	Status      models.ProjectStatus `json:"status"`
	StartDate   string               `json:"start_date,omitempty"`
	EndDate     string               `json:"end_date,omitempty"`
}

// ListProjects returns all projects visible to the caller.
func (c *Client) ListProjects(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	if err := c.do(ctx, "projects.list", http.MethodGet, "/projects/", nil, "", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns a single project by id.
func (c *Client) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/projects/%d", id)
	if err := c.do(ctx, "projects.get", http.MethodGet, path, nil, "", &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject submits the project's editable fields.
func (c *Client) UpdateProject(ctx context.Context, id int64, req UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/projects/%d", id)
	if err := c.doJSON(ctx, "projects.update", http.MethodPut, path, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
