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

// Projects renders the project list page.
func Projects(sess *session.Session, projects []*models.Project, errMsg, csrfToken, nonce string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Projects</h1>`); err != nil {
			return err
		}
		if errMsg != "" {
			if err := components.Alert("error", errMsg).Render(ctx, w); err != nil {
				return err
			}
		}

		if len(projects) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No projects found.</p>`)
			return err
		}

		var b strings.Builder
		b.WriteString(`<table class="list"><thead><tr><th>Name</th><th>Address</th><th>Status</th><th>Start</th><th>End</th></tr></thead><tbody>`)
		for _, p := range projects {
			b.WriteString(`<tr class="project-row">`)
			fmt.Fprintf(&b, `<td><a href="/projects/%d">%s</a></td>`, p.ID, templ.EscapeString(p.Name))
			fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(p.Address))
			fmt.Fprintf(&b, `<td><span class="badge badge-%s">%s</span></td>`,
				templ.EscapeString(string(p.Status)), templ.EscapeString(p.Status.Label()))
			fmt.Fprintf(&b, `<td>%s</td><td>%s</td>`, templ.EscapeString(p.StartDate), templ.EscapeString(p.EndDate))
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody></table>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout("Projects", sess, csrfToken, nonce, body)
}
