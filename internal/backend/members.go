package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/good-yellow-bee/siteboard/internal/models"
)

type addMemberRequest struct {
	UserID int64 `json:"user_id"`
}

// ListMembers returns the users assigned to a project.
func (c *Client) ListMembers(ctx context.Context, projectID int64) ([]*models.Member, error) {
	var members []*models.Member
	path := fmt.Sprintf("/projects/%d/members", projectID)
	if err := c.do(ctx, "members.list", http.MethodGet, path, nil, "", &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddMember assigns a user to a project.
func (c *Client) AddMember(ctx context.Context, projectID, userID int64) error {
	path := fmt.Sprintf("/projects/%d/members", projectID)
	return c.doJSON(ctx, "members.add", http.MethodPost, path, addMemberRequest{UserID: userID}, nil)
}

// RemoveMember removes a user from a project.
func (c *Client) RemoveMember(ctx context.Context, projectID, userID int64) error {
	path := fmt.Sprintf("/projects/%d/members/%d", projectID, userID)
	return c.do(ctx, "members.remove", http.MethodDelete, path, nil, "", nil)
}

// ListUsers returns all users known to the backend.
func (c *Client) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := c.do(ctx, "users.list", http.MethodGet, "/users/", nil, "", &users); err != nil {
		return nil, err
	}
	return users, nil
}
