package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/good-yellow-bee/siteboard/internal/models"
)

func TestDefault_DrawingManageThreeRoles(t *testing.T) {
	p := Default()

	for _, role := range []models.Role{models.RoleAdmin, models.RoleProjectManager, models.RoleTeamLeader} {
		if !p.Allowed(ActionDrawingManage, role) {
			t.Errorf("drawing.manage should allow %s", role)
		}
	}
	if p.Allowed(ActionDrawingManage, models.RoleWorker) {
		t.Error("drawing.manage should not allow worker")
	}
}

func TestDefault_MemberManageTwoRoles(t *testing.T) {
	p := Default()

	if !p.Allowed(ActionMemberManage, models.RoleAdmin) || !p.Allowed(ActionMemberManage, models.RoleProjectManager) {
		t.Error("member.manage should allow admin and project_manager")
	}
	if p.Allowed(ActionMemberManage, models.RoleTeamLeader) {
		t.Error("member.manage should not allow team_leader")
	}
}

func TestLoad_OverridesMentionedActionsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	content := `allow:
  drawing.manage:
    - admin
    - project_manager
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Overridden: team_leader dropped from drawing.manage
	if p.Allowed(ActionDrawingManage, models.RoleTeamLeader) {
		t.Error("file override should drop team_leader from drawing.manage")
	}
	// Untouched action keeps defaults
	if !p.Allowed(ActionProjectEdit, models.RoleProjectManager) {
		t.Error("project.edit default lost after Load")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/policy.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	if err := os.WriteFile(path, []byte("allow: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := Watch(ctx, p, path); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	update := `allow:
  assignment.create:
    - admin
    - project_manager
    - team_leader
`
	if err := os.WriteFile(path, []byte(update), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		if p.Allowed(ActionAssignmentCreate, models.RoleTeamLeader) {
			return
		}
		select {
		case <-deadline:
			t.Fatal("policy not reloaded after file write")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestReplace(t *testing.T) {
	p := Default()
	next := &Policy{allows: map[Action][]models.Role{
		ActionProjectEdit: {models.RoleAdmin},
	}}
	p.Replace(next)

	if p.Allowed(ActionProjectEdit, models.RoleProjectManager) {
		t.Error("Replace did not swap allow-lists")
	}
	if !p.Allowed(ActionProjectEdit, models.RoleAdmin) {
		t.Error("admin lost after Replace")
	}
}
