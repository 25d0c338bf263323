package view

import (
	"context"
	"fmt"
	"strings"

	"fyyur/internal/dto/response"

	"github.com/a-h/templ"
)

type showLine struct {
	href, name, image, start string
}

type profile struct {
	kind, editHref     string
	id                 int64
	name, image        string
	genres             []string
	location           string
	address            string
	phone              string
	website, facebook  string
	seeking            bool
	seekingLabel       string
	seekingDescription string
	past, upcoming     []showLine
}

func (p profile) render(h *html) {
	h.tagf(`<article class="%s" data-id="%d"><h1>`, p.kind, p.id)
	h.text(p.name)
	h.raw(`</h1>`)
	if p.image != "" {
		h.tagf(`<img src="%s" alt="">`, templ.URL(p.image))
	}
	h.raw(`<p class="genres">`)
	h.text(strings.Join(p.genres, ", "))
	h.raw(`</p><p class="location">`)
	h.text(p.location)
	h.raw(`</p>`)
	for _, field := range []struct{ class, value string }{
		{"address", p.address},
		{"phone", p.phone},
	} {
		if field.value == "" {
			continue
		}
		h.tagf(`<p class="%s">`, field.class)
		h.text(field.value)
		h.raw(`</p>`)
	}
	if p.website != "" {
		h.raw(`<p class="website">`)
		h.link(p.website, p.website)
		h.raw(`</p>`)
	}
	if p.facebook != "" {
		h.raw(`<p class="facebook">`)
		h.link(p.facebook, p.facebook)
		h.raw(`</p>`)
	}
	if p.seeking {
		h.raw(`<div class="seeking"><p>Currently seeking `)
		h.text(p.seekingLabel)
		h.raw(`</p><p>`)
		h.text(p.seekingDescription)
		h.raw(`</p></div>`)
	} else {
		h.raw(`<p class="not-seeking">Not currently seeking `)
		h.text(p.seekingLabel)
		h.raw(`</p>`)
	}
	h.raw(`<p>`)
	h.link(p.editHref, "Edit")
	h.raw(`</p>`)
	showSection(h, "upcoming", "Upcoming Shows", p.upcoming)
	showSection(h, "past", "Past Shows", p.past)
	h.raw(`</article>`)
}

func showSection(h *html, class, title string, shows []showLine) {
	h.tagf(`<section class="%s"><h2>%d %s</h2><ul>`, class, len(shows), title)
	for _, s := range shows {
		h.raw(`<li>`)
		if s.image != "" {
			h.tagf(`<img src="%s" alt="">`, templ.URL(s.image))
		}
		h.link(s.href, s.name)
		h.raw(` <time>`)
		h.text(s.start)
		h.raw(`</time></li>`)
	}
	h.raw(`</ul></section>`)
}

func VenueDetail(v response.VenueDetailResponse) templ.Component {
	lines := func(shows []response.VenueShowResponse) []showLine {
		out := make([]showLine, len(shows))
		for i, s := range shows {
			out[i] = showLine{fmt.Sprintf("/artists/%d", s.ArtistID), s.ArtistName, s.ArtistImageLink, s.StartTime}
		}
		return out
	}
	p := profile{
		kind:               "venue",
		editHref:           fmt.Sprintf("/venues/%d/edit", v.ID),
		id:                 v.ID,
		name:               v.Name,
		image:              v.ImageLink,
		genres:             v.Genres,
		location:           v.City + ", " + v.State,
		address:            v.Address,
		phone:              v.Phone,
		website:            v.Website,
		facebook:           v.FacebookLink,
		seeking:            v.SeekingTalent,
		seekingLabel:       "talent",
		seekingDescription: v.SeekingDescription,
		past:               lines(v.PastShows),
		upcoming:           lines(v.UpcomingShows),
	}
	return component(func(_ context.Context, h *html) {
		p.render(h)
		h.tagf(`<button type="button" class="delete" data-url="/venues/%d">Delete venue</button>`, v.ID)
	})
}

func ArtistDetail(a response.ArtistDetailResponse) templ.Component {
	lines := func(shows []response.ArtistShowResponse) []showLine {
		out := make([]showLine, len(shows))
		for i, s := range shows {
			out[i] = showLine{fmt.Sprintf("/venues/%d", s.VenueID), s.VenueName, s.VenueImageLink, s.StartTime}
		}
		return out
	}
	p := profile{
		kind:               "artist",
		editHref:           fmt.Sprintf("/artists/%d/edit", a.ID),
		id:                 a.ID,
		name:               a.Name,
		image:              a.ImageLink,
		genres:             a.Genres,
		location:           a.City + ", " + a.State,
		phone:              a.Phone,
		website:            a.Website,
		facebook:           a.FacebookLink,
		seeking:            a.SeekingVenue,
		seekingLabel:       "performance venues",
		seekingDescription: a.SeekingDescription,
		past:               lines(a.PastShows),
		upcoming:           lines(a.UpcomingShows),
	}
	return component(func(_ context.Context, h *html) {
		p.render(h)
		h.tagf(`<button type="button" class="delete" data-url="/artists/%d">Delete artist</button>`, a.ID)
	})
}
