// Package pages contains the console's page and partial views. Views
// are plain templ components; all dynamic values are escaped.
package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/good-yellow-bee/siteboard/internal/web/session"
)

// layout wraps body in the site chrome: header, nav, and the HTMX
// script loaded with the per-request CSP nonce.
func layout(title string, sess *session.Session, csrfToken, nonce string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, `<title>%s - SiteBoard</title>`, templ.EscapeString(title))
		b.WriteString(`<link rel="stylesheet" href="/static/site.css">`)
		nonceAttr := ""
		if nonce != "" {
			nonceAttr = fmt.Sprintf(` nonce="%s"`, templ.EscapeString(nonce))
		}
		fmt.Fprintf(&b, `<script src="https://unpkg.com/htmx.org@1.9.12"%s></script>`, nonceAttr)
		b.WriteString(`</head><body>`)

		b.WriteString(`<header class="topbar"><a href="/projects" class="brand">SiteBoard</a>`)
		if sess != nil {
			b.WriteString(`<nav><a href="/projects">Projects</a></nav>`)
			fmt.Fprintf(&b, `<div class="user-menu"><span>%s</span><span class="role">%s</span>`,
				templ.EscapeString(sess.Name), templ.EscapeString(sess.Role.Label()))
			fmt.Fprintf(&b, `<form method="post" action="/logout"><input type="hidden" name="gorilla.csrf.Token" value="%s"><button type="submit" class="link">Sign out</button></form></div>`,
				templ.EscapeString(csrfToken))
		}
		b.WriteString(`</header><main class="content">`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
