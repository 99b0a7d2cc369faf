package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/good-yellow-bee/siteboard/internal/models"
)

func TestDrawingsSection_GatesControlsByRole(t *testing.T) {
	drawings := []*models.Drawing{{ID: 1, ProjectID: 42, Filename: "plan.pdf", Status: models.DrawingApproved}}

	var sb strings.Builder
	if err := DrawingsSection(42, drawings, true, "", "tok").Render(context.Background(), &sb); err != nil {
		t.Fatal(err)
	}
	managed := sb.String()
	if !strings.Contains(managed, `name="file"`) {
		t.Error("manager view missing upload form")
	}
	if !strings.Contains(managed, "hx-confirm") {
		t.Error("manager view missing delete confirmation")
	}
	if !strings.Contains(managed, `name="author"`) {
		t.Error("edit form missing author input")
	}

	sb.Reset()
	if err := DrawingsSection(42, drawings, false, "", "tok").Render(context.Background(), &sb); err != nil {
		t.Fatal(err)
	}
	readonly := sb.String()
	if strings.Contains(readonly, `name="file"`) {
		t.Error("read-only view shows upload form")
	}
	if strings.Contains(readonly, "Delete") {
		t.Error("read-only view shows delete button")
	}
	// The download link stays available to everyone.
	if !strings.Contains(readonly, "/drawings/1/download") {
		t.Error("read-only view missing download link")
	}
}

func TestDrawingsSection_EmptyStateOnce(t *testing.T) {
	var sb strings.Builder
	if err := DrawingsSection(42, nil, true, "", "tok").Render(context.Background(), &sb); err != nil {
		t.Fatal(err)
	}
	body := sb.String()
	if got := strings.Count(body, "No drawings uploaded yet."); got != 1 {
		t.Errorf("empty state rendered %d times, want 1", got)
	}
	if strings.Contains(body, "drawing-row") {
		t.Error("empty section should render no rows")
	}
}

func TestMembersSection_GatesControlsByRole(t *testing.T) {
	members := []*models.Member{{UserID: 7, FullName: "Sam Mason", Role: models.RoleWorker}}
	candidates := []*models.User{{ID: 9, FullName: "Ira Klein", Role: models.RoleWorker}}

	var sb strings.Builder
	if err := MembersSection(42, members, candidates, true, "", "tok").Render(context.Background(), &sb); err != nil {
		t.Fatal(err)
	}
	managed := sb.String()
	if !strings.Contains(managed, `name="user_id"`) {
		t.Error("manager view missing add form")
	}
	if !strings.Contains(managed, "/projects/42/members/7/delete") {
		t.Error("manager view missing remove control")
	}

	sb.Reset()
	if err := MembersSection(42, members, candidates, false, "", "tok").Render(context.Background(), &sb); err != nil {
		t.Fatal(err)
	}
	readonly := sb.String()
	if strings.Contains(readonly, `name="user_id"`) {
		t.Error("read-only view shows add form")
	}
	if strings.Contains(readonly, "Remove") {
		t.Error("read-only view shows remove control")
	}
	if !strings.Contains(readonly, "Sam Mason") {
		t.Error("read-only view missing member rows")
	}
}

func TestMembersSection_ErrorSlotCarriesMessage(t *testing.T) {
	var sb strings.Builder
	if err := MembersSection(42, nil, nil, true, "Cannot remove last manager", "tok").Render(context.Background(), &sb); err != nil {
		t.Fatal(err)
	}
	body := sb.String()
	if !strings.Contains(body, "Cannot remove last manager") {
		t.Error("error message not rendered")
	}
	if !strings.Contains(body, `id="members-errors"`) {
		t.Error("error slot missing")
	}
}

func TestAssignmentModal_EscapesValues(t *testing.T) {
	projects := []*models.Project{{ID: 1, Name: `<script>alert(1)</script>`, Status: models.ProjectPlanning}}
	users := []*models.User{{ID: 9, FullName: "Ira Klein"}}

	var sb strings.Builder
	if err := AssignmentModal(projects, users, 0, "2026-09-01", "", "tok").Render(context.Background(), &sb); err != nil {
		t.Fatal(err)
	}
	body := sb.String()
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("project name not escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("escaped project name missing")
	}
}
