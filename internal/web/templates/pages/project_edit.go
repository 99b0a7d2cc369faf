package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/good-yellow-bee/siteboard/internal/models"
	"github.com/good-yellow-bee/siteboard/internal/web/session"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/components"
)

// ProjectEdit renders the project edit page with the drawings and
// members sections mounted beneath the project form.
func ProjectEdit(sess *session.Session, project *models.Project, drawings, members templ.Component, errMsg, successMsg, csrfToken, nonce string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<h1>%s</h1>`, templ.EscapeString(project.Name))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if errMsg != "" {
			if err := components.Alert("error", errMsg).Render(ctx, w); err != nil {
				return err
			}
		}
		if successMsg != "" {
			if err := components.Alert("success", successMsg).Render(ctx, w); err != nil {
				return err
			}
		}

		b.Reset()
		fmt.Fprintf(&b, `<form id="project-form" method="post" action="/projects/%d">`, project.ID)
		fmt.Fprintf(&b, `<input type="hidden" name="gorilla.csrf.Token" value="%s">`, templ.EscapeString(csrfToken))
		b.WriteString(`<label for="name">Name</label>`)
		fmt.Fprintf(&b, `<input type="text" id="name" name="name" value="%s" required>`, templ.EscapeString(project.Name))
		b.WriteString(`<label for="description">Description</label>`)
		fmt.Fprintf(&b, `<textarea id="description" name="description">%s</textarea>`, templ.EscapeString(project.Description))
		b.WriteString(`<label for="address">Address</label>`)
		fmt.Fprintf(&b, `<input type="text" id="address" name="address" value="%s">`, templ.EscapeString(project.Address))
		b.WriteString(`<label for="status">Status</label><select id="status" name="status">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		opts := make([][2]string, 0, len(models.ProjectStatuses))
		for _, s := range models.ProjectStatuses {
			opts = append(opts, [2]string{string(s), s.Label()})
		}
		if err := components.SelectOptions(opts, string(project.Status)).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString(`</select>`)
		b.WriteString(`<label for="start_date">Start date</label>`)
		fmt.Fprintf(&b, `<input type="date" id="start_date" name="start_date" value="%s">`, templ.EscapeString(project.StartDate))
		b.WriteString(`<label for="end_date">End date</label>`)
		fmt.Fprintf(&b, `<input type="date" id="end_date" name="end_date" value="%s">`, templ.EscapeString(project.EndDate))
		b.WriteString(`<button type="submit">Save project</button>`)
		b.WriteString(`</form>`)

		fmt.Fprintf(&b, `<div class="toolbar"><button hx-get="/assignments/new" hx-target="#modal" hx-swap="innerHTML">New assignment</button></div>`)
		b.WriteString(`<div id="modal"></div>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := drawings.Render(ctx, w); err != nil {
			return err
		}
		return members.Render(ctx, w)
	})
	return layout(project.Name, sess, csrfToken, nonce, body)
}

// ProjectDenied renders the permission denial state for edit pages.
func ProjectDenied(sess *session.Session, csrfToken, nonce string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="denied"><h1>Access denied</h1><p>You do not have permission to edit projects.</p><p><a href="/projects">Back to projects</a></p></div>`)
		return err
	})
	return layout("Access denied", sess, csrfToken, nonce, body)
}

// ProjectNotFound renders the not-found state with a back link.
func ProjectNotFound(sess *session.Session, csrfToken, nonce string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="not-found"><h1>Project not found</h1><p>The project does not exist or was removed.</p><p><a href="/projects">Back to projects</a></p></div>`)
		return err
	})
	return layout("Not found", sess, csrfToken, nonce, body)
}

// ProjectLoadError renders a generic load failure without a back link.
func ProjectLoadError(sess *session.Session, errMsg, csrfToken, nonce string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Project</h1>`); err != nil {
			return err
		}
		return components.Alert("error", errMsg).Render(ctx, w)
	})
	return layout("Project", sess, csrfToken, nonce, body)
}
