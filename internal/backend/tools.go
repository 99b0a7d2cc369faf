package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/good-yellow-bee/siteboard/internal/models"
)

// GetTool returns a tool with its history logs.
func (c *Client) GetTool(ctx context.Context, id int64) (*models.Tool, error) {
	var tool models.Tool
	path := fmt.Sprintf("/tools/%d", id)
	if err := c.do(ctx, "tools.get", http.MethodGet, path, nil, "", &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}
