package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/good-yellow-bee/siteboard/internal/web/templates/components"
)

// Login renders the sign-in page. errMsg is shown as an inline banner.
func Login(csrfToken, errMsg, nonce string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="login-card"><h1>Sign in to SiteBoard</h1>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if errMsg != "" {
			if err := components.Alert("error", errMsg).Render(ctx, w); err != nil {
				return err
			}
		}

		b.Reset()
		b.WriteString(`<form method="post" action="/login" hx-post="/login" hx-disabled-elt="find button">`)
		fmt.Fprintf(&b, `<input type="hidden" name="gorilla.csrf.Token" value="%s">`, templ.EscapeString(csrfToken))
		b.WriteString(`<label for="email">Email</label>`)
		b.WriteString(`<input type="email" id="email" name="email" required autofocus>`)
		b.WriteString(`<label for="password">Password</label>`)
		b.WriteString(`<input type="password" id="password" name="password" required>`)
		b.WriteString(`<button type="submit">Sign in</button>`)
		b.WriteString(`</form></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout("Sign in", nil, csrfToken, nonce, body)
}
