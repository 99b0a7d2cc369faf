// Package components contains shared view fragments for the console.
package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Alert renders an inline banner. kind is "error" or "success".
func Alert(kind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="alert alert-%s" role="alert">%s</div>`,
			templ.EscapeString(kind), templ.EscapeString(message))
		return err
	})
}

// StatusBadge renders a colored status chip.
func StatusBadge(value, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<span class="badge badge-%s">%s</span>`,
			templ.EscapeString(value), templ.EscapeString(label))
		return err
	})
}

// Spinner renders the loading indicator shown while an HTMX request
// is in flight.
func Spinner(id string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<span id="%s" class="htmx-indicator spinner" aria-label="Loading">Loading…</span>`,
			templ.EscapeString(id))
		return err
	})
}

// CSRFField renders the hidden CSRF token input for a form.
func CSRFField(token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<input type="hidden" name="gorilla.csrf.Token" value="%s">`,
			templ.EscapeString(token))
		return err
	})
}

// SelectOptions renders <option> elements, marking selected.
func SelectOptions(options [][2]string, selected string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, opt := range options {
			value, label := opt[0], opt[1]
			sel := ""
			if value == selected {
				sel = " selected"
			}
			fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`,
				templ.EscapeString(value), sel, templ.EscapeString(label))
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}
