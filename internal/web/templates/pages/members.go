package pages

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/good-yellow-bee/siteboard/internal/models"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/components"
)

// MembersSection renders the team panel for a project. candidates are
// the users not yet on the team, offered in the add picker.
func MembersSection(projectID int64, members []*models.Member, candidates []*models.User, canManage bool, errMsg, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="members-section" class="panel"><h2>Team</h2><div id="members-errors">`); err != nil {
			return err
		}
		if errMsg != "" {
			if err := components.Alert("error", errMsg).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}

		if canManage && len(candidates) > 0 {
			var b strings.Builder
			fmt.Fprintf(&b, `<form class="add-member" hx-post="/projects/%d/members" hx-target="#members-section" hx-swap="outerHTML" hx-disabled-elt="find button">`, projectID)
			if _, err := io.WriteString(w, b.String()); err != nil {
				return err
			}
			if err := components.CSRFField(csrfToken).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<label for="member-user">Add member</label><select id="member-user" name="user_id" required>`); err != nil {
				return err
			}

			opts := make([][2]string, 0, len(candidates))
			for _, u := range candidates {
				opts = append(opts, [2]string{strconv.FormatInt(u.ID, 10), u.DisplayName()})
			}
			if err := components.SelectOptions(opts, "").Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</select><button type="submit">Add</button></form>`); err != nil {
				return err
			}
		}

		if len(members) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No members assigned yet.</p></section>`)
			return err
		}

		var b strings.Builder
		b.WriteString(`<table class="list"><thead><tr><th>Name</th><th>Email</th><th>Role</th>`)
		if canManage {
			b.WriteString(`<th></th>`)
		}
		b.WriteString(`</tr></thead><tbody>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		for _, m := range members {
			b.Reset()
			b.WriteString(`<tr class="member-row">`)
			fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(m.DisplayName()))
			fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(m.Email))
			fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(m.Role.Label()))
			if _, err := io.WriteString(w, b.String()); err != nil {
				return err
			}

			if canManage {
				b.Reset()
				fmt.Fprintf(&b, `<td class="actions"><form hx-post="/projects/%d/members/%d/delete" hx-target="#members-section" hx-swap="outerHTML" hx-confirm="Remove %s from the project?">`,
					projectID, m.UserID, templ.EscapeString(m.DisplayName()))
				if _, err := io.WriteString(w, b.String()); err != nil {
					return err
				}
				if err := components.CSRFField(csrfToken).Render(ctx, w); err != nil {
					return err
				}
				if _, err := io.WriteString(w, `<button type="submit" class="danger">Remove</button></form></td>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}
