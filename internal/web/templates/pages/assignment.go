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

// AssignmentModal renders the new-assignment dialog. projects must be
// pre-filtered to active ones; startDate prefills the start field.
func AssignmentModal(projects []*models.Project, users []*models.User, selectedUserID int64, startDate, errMsg, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="modal-card"><h2>New assignment</h2>`); err != nil {
			return err
		}
		if errMsg != "" {
			if err := components.Alert("error", errMsg).Render(ctx, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<form hx-post="/assignments" hx-target="#modal" hx-swap="innerHTML" hx-disabled-elt="find button">`); err != nil {
			return err
		}
		if err := components.CSRFField(csrfToken).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<label for="assignment-user">Worker</label><select id="assignment-user" name="user_id" required>`); err != nil {
			return err
		}
		userOpts := make([][2]string, 0, len(users))
		for _, u := range users {
			userOpts = append(userOpts, [2]string{strconv.FormatInt(u.ID, 10), u.DisplayName()})
		}
		selected := ""
		if selectedUserID > 0 {
			selected = strconv.FormatInt(selectedUserID, 10)
		}
		if err := components.SelectOptions(userOpts, selected).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `</select><label for="assignment-project">Project</label><select id="assignment-project" name="project_id" required>`); err != nil {
			return err
		}
		projectOpts := make([][2]string, 0, len(projects))
		for _, p := range projects {
			projectOpts = append(projectOpts, [2]string{strconv.FormatInt(p.ID, 10), p.Name})
		}
		if err := components.SelectOptions(projectOpts, "").Render(ctx, w); err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(`</select>`)
		b.WriteString(`<label for="assignment-start">Start date</label>`)
		fmt.Fprintf(&b, `<input type="date" id="assignment-start" name="start_date" value="%s" required>`, templ.EscapeString(startDate))
		b.WriteString(`<label for="assignment-end">End date</label>`)
		b.WriteString(`<input type="date" id="assignment-end" name="end_date">`)
		b.WriteString(`<label for="assignment-notes">Notes</label>`)
		b.WriteString(`<textarea id="assignment-notes" name="notes"></textarea>`)
		b.WriteString(`<button type="submit">Create assignment</button>`)
		b.WriteString(`</form></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AssignmentCreated replaces the modal body after a successful create.
func AssignmentCreated() templ.Component {
	return components.Alert("success", "Assignment created.")
}
