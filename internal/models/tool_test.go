package models

import (
	"testing"
	"time"
)

func TestHistoryNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tool := &Tool{
		HistoryLogs: []ToolHistoryLog{
			{ID: 1, Timestamp: base, Action: "checked_out"},
			{ID: 2, Timestamp: base.Add(2 * time.Hour), Action: "returned"},
			{ID: 3, Timestamp: base.Add(time.Hour), Action: "serviced"},
		},
	}

	logs := tool.HistoryNewestFirst()
	if len(logs) != 3 {
		t.Fatalf("len = %d, want 3", len(logs))
	}
	if logs[0].ID != 2 || logs[1].ID != 3 || logs[2].ID != 1 {
		t.Errorf("order = %d,%d,%d, want 2,3,1", logs[0].ID, logs[1].ID, logs[2].ID)
	}

	// Original slice must not be reordered
	if tool.HistoryLogs[0].ID != 1 {
		t.Error("HistoryNewestFirst modified the original slice")
	}
}

func TestHistoryNewestFirst_Empty(t *testing.T) {
	tool := &Tool{}
	if logs := tool.HistoryNewestFirst(); len(logs) != 0 {
		t.Errorf("len = %d, want 0", len(logs))
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"project_manager", RoleProjectManager},
		{"team_leader", RoleTeamLeader},
		{"worker", RoleWorker},
		{"", RoleWorker},
		{"unknown", RoleWorker},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestProjectStatusActive(t *testing.T) {
	if !ProjectPlanning.Active() || !ProjectInProgress.Active() {
		t.Error("planning and in_progress should be active")
	}
	if ProjectCompleted.Active() || ProjectOnHold.Active() {
		t.Error("completed and on_hold should not be active")
	}
}

func TestDrawingSizeString(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tt := range tests {
		d := &Drawing{SizeBytes: tt.bytes}
		if got := d.SizeString(); got != tt.want {
			t.Errorf("SizeString(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
