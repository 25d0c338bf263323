package view

import (
	"context"

	"fyyur/pkg/flash"

	"github.com/a-h/templ"
)

// Page is the chrome around every body component.
type Page struct {
	Title  string
	Notice *flash.Notice
}

var navLinks = []struct{ href, label string }{
	{"/venues", "Venues"},
	{"/artists", "Artists"},
	{"/shows", "Shows"},
	{"/venues/create", "Post a venue"},
	{"/artists/create", "Post an artist"},
	{"/shows/create", "Post a show"},
}

// deleteScript sends DELETE for buttons carrying a data-url and returns home.
const deleteScript = `<script>document.addEventListener("click", function (e) {
	var b = e.target.closest("button.delete");
	if (!b) { return; }
	fetch(b.dataset.url, {method: "DELETE"}).then(function () { window.location = "/"; });
});</script>`

func Layout(page Page, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		if page.Title != "" {
			h.text(page.Title)
			h.raw(` | `)
		}
		h.raw(`Fyyur</title></head><body><header><nav>`)
		h.link("/", "Fyyur")
		h.raw(`<ul>`)
		for _, l := range navLinks {
			h.raw(`<li>`)
			h.link(l.href, l.label)
			h.raw(`</li>`)
		}
		h.raw(`</ul></nav></header>`)
		if page.Notice != nil {
			h.tagf(`<div class="flash flash-%s" role="alert">`, string(page.Notice.Kind))
			h.text(page.Notice.Message)
			h.raw(`</div>`)
		}
		h.raw(`<main>`)
		h.render(ctx, body)
		h.raw(`</main>`)
		h.raw(deleteScript)
		h.raw(`</body></html>`)
	})
}

func Home() templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<h1>Fyyur</h1><p>Find venues to play at, or artists to book.</p>`)
		h.raw(`<form method="post" action="/venues/search"><input type="search" name="search_term" placeholder="Find a venue"></form>`)
		h.raw(`<form method="post" action="/artists/search"><input type="search" name="search_term" placeholder="Find an artist"></form>`)
	})
}

// ErrorPage is the body for 400, 404 and 500 responses.
func ErrorPage(status int, message string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.tagf(`<h1>%d</h1><p>`, status)
		h.text(message)
		h.raw(`</p>`)
		h.link("/", "Back home")
	})
}
