// Package view renders the server-side HTML pages as templ components.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// html accumulates the first write error so components can emit markup
// without checking every call.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// tagf writes format verbatim with every string argument HTML-escaped, so
// markup can only come from the format literal.
func (h *html) tagf(format string, args ...any) {
	if h.err != nil {
		return
	}
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			args[i] = templ.EscapeString(v)
		case templ.SafeURL:
			args[i] = templ.EscapeString(string(v))
		case fmt.Stringer:
			args[i] = templ.EscapeString(v.String())
		}
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}

// text writes s HTML-escaped.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// link writes an anchor with a sanitized href.
func (h *html) link(href, label string) {
	h.tagf(`<a href="%s">`, templ.URL(href))
	h.text(label)
	h.raw(`</a>`)
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component adapts a markup-writing func to templ.Component.
func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}
