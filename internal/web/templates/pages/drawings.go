package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/good-yellow-bee/siteboard/internal/models"
	"github.com/good-yellow-bee/siteboard/internal/web/templates/components"
)

// DrawingsSection renders the drawings panel for a project. It is the
// swap target for uploads, edits and deletes, so the wrapper carries a
// stable id. canManage gates the upload form and the row actions.
func DrawingsSection(projectID int64, drawings []*models.Drawing, canManage bool, errMsg, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="drawings-section" class="panel"><h2>Drawings</h2><div id="drawings-errors">`); err != nil {
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

		if canManage {
			var b strings.Builder
			fmt.Fprintf(&b, `<form class="upload-form" hx-post="/projects/%d/drawings" hx-encoding="multipart/form-data" hx-target="#drawings-section" hx-swap="outerHTML" hx-disabled-elt="find button" hx-indicator="#drawings-spinner">`, projectID)
			if _, err := io.WriteString(w, b.String()); err != nil {
				return err
			}
			if err := components.CSRFField(csrfToken).Render(ctx, w); err != nil {
				return err
			}
			b.Reset()
			b.WriteString(`<label for="drawing-file">File</label>`)
			b.WriteString(`<input type="file" id="drawing-file" name="file" required>`)
			b.WriteString(`<label for="drawing-description">Description</label>`)
			b.WriteString(`<input type="text" id="drawing-description" name="description">`)
			b.WriteString(`<button type="submit">Upload</button>`)
			if _, err := io.WriteString(w, b.String()); err != nil {
				return err
			}
			if err := components.Spinner("drawings-spinner").Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</form>`); err != nil {
				return err
			}
		}

		if len(drawings) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No drawings uploaded yet.</p></section>`)
			return err
		}

		var b strings.Builder
		b.WriteString(`<table class="list"><thead><tr><th>File</th><th>Description</th><th>Rev</th><th>Discipline</th><th>Status</th><th>Date</th><th>Author</th><th>Size</th>`)
		if canManage {
			b.WriteString(`<th></th>`)
		}
		b.WriteString(`</tr></thead><tbody>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		for _, d := range drawings {
			if err := drawingRow(projectID, d, canManage, csrfToken).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

func drawingRow(projectID int64, d *models.Drawing, canManage bool, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<tr class="drawing-row">`)
		fmt.Fprintf(&b, `<td><a href="/drawings/%d/download">%s</a></td>`, d.ID, templ.EscapeString(d.Filename))
		fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(d.Description))
		fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(d.Revision))
		fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(d.Discipline))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<td>`); err != nil {
			return err
		}
		if err := components.StatusBadge(string(d.Status), d.Status.Label()).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		fmt.Fprintf(&b, `</td><td>%s</td>`, templ.EscapeString(d.DrawingDate))
		fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(d.Author))
		fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(d.SizeString()))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if canManage {
			if _, err := io.WriteString(w, `<td class="actions"><details><summary>Edit</summary>`); err != nil {
				return err
			}
			if err := drawingEditForm(d, csrfToken).Render(ctx, w); err != nil {
				return err
			}

			b.Reset()
			b.WriteString(`</details>`)
			fmt.Fprintf(&b, `<form hx-post="/drawings/%d/delete" hx-target="#drawings-section" hx-swap="outerHTML" hx-confirm="Delete drawing %s?">`,
				d.ID, templ.EscapeString(d.Filename))
			fmt.Fprintf(&b, `<input type="hidden" name="project_id" value="%d">`, d.ProjectID)
			if _, err := io.WriteString(w, b.String()); err != nil {
				return err
			}
			if err := components.CSRFField(csrfToken).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<button type="submit" class="danger">Delete</button></form></td>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tr>`)
		return err
	})
}

func drawingEditForm(d *models.Drawing, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<form class="drawing-edit" hx-post="/drawings/%d" hx-target="#drawings-section" hx-swap="outerHTML" hx-disabled-elt="find button">`, d.ID)
		fmt.Fprintf(&b, `<input type="hidden" name="project_id" value="%d">`, d.ProjectID)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := components.CSRFField(csrfToken).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		fmt.Fprintf(&b, `<label>Description <input type="text" name="description" value="%s"></label>`, templ.EscapeString(d.Description))
		fmt.Fprintf(&b, `<label>Revision <input type="text" name="revision" value="%s"></label>`, templ.EscapeString(d.Revision))
		fmt.Fprintf(&b, `<label>Discipline <input type="text" name="discipline" value="%s"></label>`, templ.EscapeString(d.Discipline))
		fmt.Fprintf(&b, `<label>Date <input type="date" name="drawing_date" value="%s"></label>`, templ.EscapeString(d.DrawingDate))
		fmt.Fprintf(&b, `<label>Author <input type="text" name="author" value="%s"></label>`, templ.EscapeString(d.Author))
		b.WriteString(`<label>Status <select name="status">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		opts := make([][2]string, 0, len(models.DrawingStatuses))
		for _, s := range models.DrawingStatuses {
			opts = append(opts, [2]string{string(s), s.Label()})
		}
		if err := components.SelectOptions(opts, string(d.Status)).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</select></label><button type="submit">Save</button></form>`)
		return err
	})
}
