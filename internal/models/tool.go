package models

import (
	"sort"
	"time"
)

// ToolStatus represents the availability state of a tool.
type ToolStatus string

const (
	ToolAvailable   ToolStatus = "available"
	ToolInUse       ToolStatus = "in_use"
	ToolMaintenance ToolStatus = "maintenance"
	ToolRetired     ToolStatus = "retired"
)

// Label returns a human-readable status name.
func (s ToolStatus) Label() string {
	switch s {
	case ToolAvailable:
		return "Available"
	case ToolInUse:
		return "In Use"
	case ToolMaintenance:
		return "Maintenance"
	case ToolRetired:
		return "Retired"
	default:
		return string(s)
	}
}

// ToolHistoryLog is a single append-only history entry for a tool.
type ToolHistoryLog struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	UserName  string    `json:"user_name,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// Tool represents a tracked piece of equipment.
type Tool struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Brand           string           `json:"brand,omitempty"`
	Model           string           `json:"model,omitempty"`
	SerialNumber    string           `json:"serial_number,omitempty"`
	Status          ToolStatus       `json:"status"`
	CurrentUser     *User            `json:"current_user,omitempty"`
	PurchaseDate    string           `json:"purchase_date,omitempty"`
	LastServiceDate string           `json:"last_service_date,omitempty"`
	HistoryLogs     []ToolHistoryLog `json:"history_logs,omitempty"`
}

// HistoryNewestFirst returns the history logs sorted by timestamp,
// newest first. The backend stores them in append order.
func (t *Tool) HistoryNewestFirst() []ToolHistoryLog {
	logs := make([]ToolHistoryLog, len(t.HistoryLogs))
	copy(logs, t.HistoryLogs)
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs
}
