// Package policy holds the role allow-lists that gate mutating
// controls in the console. The lists are a display affordance only;
// the backend API re-checks every mutation. They are configurable
// because the authoritative server policy decides which roles may
// act, and the console must mirror it rather than guess.
package policy

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/good-yellow-bee/siteboard/internal/models"
)

// Action identifies a class of gated mutation.
type Action string

const (
	ActionProjectEdit      Action = "project.edit"
	ActionDrawingManage    Action = "drawing.manage"
	ActionMemberManage     Action = "member.manage"
	ActionAssignmentCreate Action = "assignment.create"
)

// Policy maps actions to the roles allowed to perform them.
type Policy struct {
	mu     sync.RWMutex
	allows map[Action][]models.Role
}

// fileFormat is the on-disk YAML shape.
type fileFormat struct {
	Allow map[string][]string `yaml:"allow"`
}

// Default returns the built-in allow-lists. Drawing management keeps
// the wider three-role list; project, member, and assignment
// management keep the two-role list.
func Default() *Policy {
	return &Policy{
		allows: map[Action][]models.Role{
			ActionProjectEdit:      {models.RoleAdmin, models.RoleProjectManager},
			ActionDrawingManage:    {models.RoleAdmin, models.RoleProjectManager, models.RoleTeamLeader},
			ActionMemberManage:     {models.RoleAdmin, models.RoleProjectManager},
			ActionAssignmentCreate: {models.RoleAdmin, models.RoleProjectManager},
		},
	}
}

// Load reads allow-lists from a YAML file, falling back to the
// defaults for actions the file does not mention.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}

	p := Default()
	for action, roles := range f.Allow {
		parsed := make([]models.Role, 0, len(roles))
		for _, r := range roles {
			parsed = append(parsed, models.ParseRole(r))
		}
		p.allows[Action(action)] = parsed
	}
	return p, nil
}

// Allowed reports whether the role is in the allow-list for action.
func (p *Policy) Allowed(action Action, role models.Role) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, r := range p.allows[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Roles returns the allow-list for an action.
func (p *Policy) Roles(action Action) []models.Role {
	p.mu.RLock()
	defer p.mu.RUnlock()
	roles := make([]models.Role, len(p.allows[action]))
	copy(roles, p.allows[action])
	return roles
}

// Replace swaps in the allow-lists from another policy.
func (p *Policy) Replace(next *Policy) {
	next.mu.RLock()
	allows := make(map[Action][]models.Role, len(next.allows))
	for action, roles := range next.allows {
		copied := make([]models.Role, len(roles))
		copy(copied, roles)
		allows[action] = copied
	}
	next.mu.RUnlock()

	p.mu.Lock()
	p.allows = allows
	p.mu.Unlock()
}
