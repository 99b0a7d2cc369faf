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

// ToolDetail renders a tool with its usage history, newest entry first.
func ToolDetail(sess *session.Session, tool *models.Tool, csrfToken, nonce string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<h1>%s</h1><dl class="tool-facts">`, templ.EscapeString(tool.Name))
		fmt.Fprintf(&b, `<dt>Serial</dt><dd>%s</dd>`, templ.EscapeString(tool.SerialNumber))
		fmt.Fprintf(&b, `<dt>Brand</dt><dd>%s</dd>`, templ.EscapeString(tool.Brand))
		fmt.Fprintf(&b, `<dt>Model</dt><dd>%s</dd>`, templ.EscapeString(tool.Model))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<dt>Status</dt><dd>`); err != nil {
			return err
		}
		if err := components.StatusBadge(string(tool.Status), tool.Status.Label()).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString(`</dd>`)
		if tool.CurrentUser != nil {
			fmt.Fprintf(&b, `<dt>Held by</dt><dd>%s</dd>`, templ.EscapeString(tool.CurrentUser.DisplayName()))
		}
		b.WriteString(`</dl><h2>History</h2>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		logs := tool.HistoryNewestFirst()
		if len(logs) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No history recorded.</p>`)
			return err
		}

		b.Reset()
		b.WriteString(`<table class="list"><thead><tr><th>When</th><th>Action</th><th>Who</th><th>Notes</th></tr></thead><tbody>`)
		for _, l := range logs {
			b.WriteString(`<tr class="history-row">`)
			fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(l.Timestamp.Format("2006-01-02 15:04")))
			fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(l.Action))
			fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(l.UserName))
			fmt.Fprintf(&b, `<td>%s</td>`, templ.EscapeString(l.Notes))
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody></table>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout(tool.Name, sess, csrfToken, nonce, body)
}

// ToolNotFound renders the not-found state for the tool page.
func ToolNotFound(sess *session.Session, csrfToken, nonce string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="not-found"><h1>Tool not found</h1><p>The tool does not exist or was removed.</p><p><a href="/projects">Back to projects</a></p></div>`)
		return err
	})
	return layout("Not found", sess, csrfToken, nonce, body)
}
