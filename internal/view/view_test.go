package view

import (
	"context"
	"strings"
	"testing"

	"fyyur/internal/dto/request"
	"fyyur/internal/dto/response"
	"fyyur/pkg/flash"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestLayout_WrapsBodyAndNotice(t *testing.T) {
	notice := flash.Success("Venue <Hop> was successfully listed!")

	got := renderString(t, Layout(Page{Title: "Venues", Notice: &notice}, Home()))

	assert.Contains(t, got, "<title>Venues | Fyyur</title>")
	assert.Contains(t, got, `class="flash flash-success"`)
	assert.Contains(t, got, "Venue &lt;Hop&gt; was successfully listed!")
	assert.Contains(t, got, `name="search_term"`)
}

func TestVenues_GroupsByCity(t *testing.T) {
	got := renderString(t, Venues([]response.LocationGroupResponse{
		{City: "San Francisco", State: "CA", Venues: []response.SummaryResponse{
			{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2},
		}},
	}))

	assert.Contains(t, got, "<h3>San Francisco, CA</h3>")
	assert.Contains(t, got, `<a href="/venues/1">The Musical Hop</a>`)
	assert.Contains(t, got, "2 upcoming shows")
}

func TestSearchResults_EscapesTerm(t *testing.T) {
	got := renderString(t, SearchResults("/artists", `"><script>`, response.SearchResponse{Count: 0, Data: []response.SummaryResponse{}}))

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, ": 0</h3>")
}

func TestVenueDetail_ShowSections(t *testing.T) {
	got := renderString(t, VenueDetail(response.VenueDetailResponse{
		VenueResponse: response.VenueResponse{ID: 4, Name: "The Dueling Pianos Bar"},
		Genres:        []string{"Classical", "R&B"},
		City:          "New York",
		State:         "NY",
		PastShows: []response.VenueShowResponse{
			{ArtistID: 5, ArtistName: "Matt Quevedo", StartTime: "2019-06-15 23:00:00"},
		},
		UpcomingShows: []response.VenueShowResponse{},
	}))

	assert.Contains(t, got, "Classical, R&amp;B")
	assert.Contains(t, got, "<h2>1 Past Shows</h2>")
	assert.Contains(t, got, "<h2>0 Upcoming Shows</h2>")
	assert.Contains(t, got, `<a href="/artists/5">Matt Quevedo</a>`)
	assert.Contains(t, got, `data-url="/venues/4"`)
	assert.Contains(t, got, "Not currently seeking talent")
}

func TestArtistForm_KeepsValuesAndErrors(t *testing.T) {
	req := request.ArtistRequest{Name: "Guns N Petals", State: "CA", Genres: []string{"Jazz"}, SeekingVenue: true}

	got := renderString(t, ArtistForm("Edit artist", "/artists/4/edit", req, FieldErrors{"city": "This field is required"}))

	assert.Contains(t, got, `action="/artists/4/edit"`)
	assert.Contains(t, got, `value="Guns N Petals"`)
	assert.Contains(t, got, `<option value="CA" selected>CA</option>`)
	assert.Contains(t, got, `<option value="Jazz" selected>Jazz</option>`)
	assert.Contains(t, got, `<option value="Funk">Funk</option>`)
	assert.Contains(t, got, `name="seeking_venue" value="y" checked`)
	assert.Contains(t, got, `<p class="error" id="city-error">This field is required</p>`)
}

func TestArtistForm_EscapesHostileValues(t *testing.T) {
	req := request.ArtistRequest{Name: `"><script>alert(1)</script>`, SeekingDescription: "</textarea><b>"}

	got := renderString(t, ArtistForm("Edit <artist>", `/artists/4/edit"x`, req, FieldErrors{"name": `<i>bad</i>`}))

	assert.NotContains(t, got, "<script>")
	assert.NotContains(t, got, "<b>")
	assert.NotContains(t, got, "<i>")
	assert.Contains(t, got, `value="&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;"`)
	assert.Contains(t, got, "<h1>Edit &lt;artist&gt;</h1>")
	assert.NotContains(t, got, `edit"x`)
}

func TestTagf_EscapesStringArguments(t *testing.T) {
	var b strings.Builder
	h := &html{w: &b}

	h.input(FieldErrors{`x" onfocus="alert(1)`: "bad"}, `x" onfocus="alert(1)`, "Label", `text" autofocus="`, "v")
	h.tagf(`<p data-n="%d" class="%s">`, 7, templ.SafeURL(`a"b`))

	require.NoError(t, h.err)
	got := b.String()
	assert.NotContains(t, got, `" onfocus="`)
	assert.NotContains(t, got, `" autofocus="`)
	assert.Contains(t, got, `name="x&#34; onfocus=&#34;alert(1)"`)
	assert.Contains(t, got, `id="x&#34; onfocus=&#34;alert(1)-error"`)
	assert.Contains(t, got, `<p data-n="7" class="a&#34;b">`)
}

func TestShows_ListsPairs(t *testing.T) {
	got := renderString(t, Shows([]response.ShowResponse{
		{ID: 1, VenueID: 1, VenueName: "The Musical Hop", ArtistID: 4, ArtistName: "Guns N Petals", StartTime: "2019-05-21 21:30:00"},
	}))

	assert.Contains(t, got, `<a href="/artists/4">Guns N Petals</a> playing at <a href="/venues/1">The Musical Hop</a>`)
	assert.Contains(t, got, "<time>2019-05-21 21:30:00</time>")
}

func TestErrorPage(t *testing.T) {
	got := renderString(t, ErrorPage(404, "Venue not found"))

	assert.Contains(t, got, "<h1>404</h1><p>Venue not found</p>")
}
