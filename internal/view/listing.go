package view

import (
	"context"
	"fmt"
	"strconv"

	"fyyur/internal/dto/response"

	"github.com/a-h/templ"
)

func summaries(h *html, base string, items []response.SummaryResponse) {
	h.raw(`<ul class="items">`)
	for _, item := range items {
		h.raw(`<li>`)
		h.link(fmt.Sprintf("%s/%d", base, item.ID), item.Name)
		h.tagf(` <span class="upcoming">%d upcoming shows</span></li>`, item.NumUpcomingShows)
	}
	h.raw(`</ul>`)
}

// Venues lists venues under a heading per city.
func Venues(groups []response.LocationGroupResponse) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<h1>Venues</h1>`)
		if len(groups) == 0 {
			h.raw(`<p>No venues listed yet.</p>`)
		}
		for _, g := range groups {
			h.raw(`<h3>`)
			h.text(g.City + ", " + g.State)
			h.raw(`</h3>`)
			summaries(h, "/venues", g.Venues)
		}
	})
}

func Artists(artists []response.ArtistResponse) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<h1>Artists</h1><ul class="items">`)
		for _, a := range artists {
			h.raw(`<li>`)
			h.link("/artists/"+strconv.FormatInt(a.ID, 10), a.Name)
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
	})
}

// SearchResults shows the matches for term; base is "/venues" or "/artists".
func SearchResults(base, term string, result response.SearchResponse) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<h3>Number of search results for "`)
		h.text(term)
		h.tagf(`": %d</h3>`, result.Count)
		summaries(h, base, result.Data)
	})
}

func Shows(shows []response.ShowResponse) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<h1>Shows</h1><ul class="shows">`)
		for _, s := range shows {
			h.raw(`<li>`)
			if s.ArtistImageLink != "" {
				h.tagf(`<img src="%s" alt="">`, templ.URL(s.ArtistImageLink))
			}
			h.link(fmt.Sprintf("/artists/%d", s.ArtistID), s.ArtistName)
			h.raw(` playing at `)
			h.link(fmt.Sprintf("/venues/%d", s.VenueID), s.VenueName)
			h.raw(` <time>`)
			h.text(s.StartTime)
			h.raw(`</time></li>`)
		}
		h.raw(`</ul>`)
	})
}
