package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/good-yellow-bee/siteboard/internal/models"
)

// UpdateDrawingRequest carries the editable drawing metadata fields.
type UpdateDrawingRequest struct {
	Description string               `json:"description"`
	Revision    string               `json:"revision"`
	Discipline  string               `json:"discipline"`
	Status      models.DrawingStatus `json:"status"`
	DrawingDate string               `json:"drawing_date,omitempty"`
	Author      string               `json:"author,omitempty"`
}

// Download is a binary drawing payload. The caller must close Body.
type Download struct {
	Filename    string
	ContentType string
	Length      int64
	Body        io.ReadCloser
}

// ListDrawings returns all drawings belonging to a project.
func (c *Client) ListDrawings(ctx context.Context, projectID int64) ([]*models.Drawing, error) {
	var drawings []*models.Drawing
	path := fmt.Sprintf("/drawings/project/%d", projectID)
	if err := c.do(ctx, "drawings.list", http.MethodGet, path, nil, "", &drawings); err != nil {
		return nil, err
	}
	return drawings, nil
}

// UploadDrawing uploads a drawing file for a project. The multipart
// body always contains a description part, even when empty.
func (c *Client) UploadDrawing(ctx context.Context, projectID int64, filename string, file io.Reader, description string) (*models.Drawing, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("drawings.upload: create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("drawings.upload: copy file: %w", err)
	}
	if err := mw.WriteField("description", description); err != nil {
		return nil, fmt.Errorf("drawings.upload: write description: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("drawings.upload: close multipart: %w", err)
	}

	var drawing models.Drawing
	path := fmt.Sprintf("/drawings/upload/%d", projectID)
	if err := c.do(ctx, "drawings.upload", http.MethodPost, path, &buf, mw.FormDataContentType(), &drawing); err != nil {
		return nil, err
	}
	return &drawing, nil
}

// UpdateDrawing submits updated drawing metadata.
func (c *Client) UpdateDrawing(ctx context.Context, id int64, req UpdateDrawingRequest) (*models.Drawing, error) {
	var drawing models.Drawing
	path := fmt.Sprintf("/drawings/%d", id)
	if err := c.doJSON(ctx, "drawings.update", http.MethodPut, path, req, &drawing); err != nil {
		return nil, err
	}
	return &drawing, nil
}

// DeleteDrawing deletes a drawing.
func (c *Client) DeleteDrawing(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/drawings/%d", id)
	return c.do(ctx, "drawings.delete", http.MethodDelete, path, nil, "", nil)
}

// DownloadDrawing streams a drawing's file content.
func (c *Client) DownloadDrawing(ctx context.Context, id int64) (*Download, error) {
	path := fmt.Sprintf("/drawings/download/%d", id)
	resp, err := c.stream(ctx, "drawings.download", http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	dl := &Download{
		ContentType: resp.Header.Get("Content-Type"),
		Length:      resp.ContentLength,
		Body:        resp.Body,
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			dl.Filename = params["filename"]
		}
	}
	return dl, nil
}
