package models

import (
	"fmt"
	"time"
)

// DrawingStatus represents the review state of a drawing.
type DrawingStatus string

const (
	DrawingDraft       DrawingStatus = "draft"
	DrawingForApproval DrawingStatus = "for_approval"
	DrawingApproved    DrawingStatus = "approved"
	DrawingAsBuilt     DrawingStatus = "as_built"
	DrawingArchived    DrawingStatus = "archived"
)

// Label returns a human-readable status name.
func (s DrawingStatus) Label() string {
	switch s {
	case DrawingDraft:
		return "Draft"
	case DrawingForApproval:
		return "For Approval"
	case DrawingApproved:
		return "Approved"
	case DrawingAsBuilt:
		return "As-Built"
	case DrawingArchived:
		return "Archived"
	default:
		return string(s)
	}
}

// DrawingStatuses lists all valid statuses in display order.
var DrawingStatuses = []DrawingStatus{
	DrawingDraft,
	DrawingForApproval,
	DrawingApproved,
	DrawingAsBuilt,
	DrawingArchived,
}

// Drawing represents an uploaded project drawing. Each drawing belongs
// to exactly one project.
type Drawing struct {
	ID          int64         `json:"id"`
	ProjectID   int64         `json:"project_id"`
	Filename    string        `json:"filename"`
	Description string        `json:"description,omitempty"`
	Revision    string        `json:"revision,omitempty"`
	Discipline  string        `json:"discipline,omitempty"`
	Status      DrawingStatus `json:"status"`
	DrawingDate string        `json:"drawing_date,omitempty"`
	Author      string        `json:"author,omitempty"`
	UploadedAt  time.Time     `json:"uploaded_at"`
	SizeBytes   int64         `json:"size_bytes"`
}

// SizeString formats the file size for display.
func (d *Drawing) SizeString() string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case d.SizeBytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(d.SizeBytes)/mb)
	case d.SizeBytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(d.SizeBytes)/kb)
	default:
		return fmt.Sprintf("%d B", d.SizeBytes)
	}
}
