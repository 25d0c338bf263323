package request

import (
	"net/url"
	"testing"

	"fyyur/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func venueForm() url.Values {
	return url.Values{
		"name":           {"  The Musical Hop "},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1015 Folsom Street"},
		"phone":          {"123-123-1234"},
		"genres":         {"Jazz", "", "Reggae"},
		"image_link":     {""},
		"facebook_link":  {"https://www.facebook.com/TheMusicalHop"},
		"seeking_talent": {"y"},
	}
}

func TestVenueRequestFromForm(t *testing.T) {
	req := VenueRequestFromForm(venueForm())

	assert.Equal(t, "The Musical Hop", req.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, req.Genres)
	assert.True(t, req.SeekingTalent)
	assert.Empty(t, utils.ValidateStruct(req))
}

func TestVenueRequest_Invalid(t *testing.T) {
	form := venueForm()
	form.Set("state", "ZZ")
	form.Set("phone", "123")
	form.Del("genres")
	form.Set("image_link", "nope")

	errs := utils.ValidateStruct(VenueRequestFromForm(form))

	assert.Contains(t, errs, "state")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "genres")
	assert.Contains(t, errs, "image_link")
}

func TestArtistRequestFromForm(t *testing.T) {
	form := url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"genres":        {"Rock n Roll"},
		"seeking_venue": {"on"},
	}

	req := ArtistRequestFromForm(form)

	assert.True(t, req.SeekingVenue)
	assert.Empty(t, utils.ValidateStruct(req))

	form.Set("name", "   ")
	assert.Equal(t, "This field is required", utils.ValidateStruct(ArtistRequestFromForm(form))["name"])
}

func TestShowRequestFromForm(t *testing.T) {
	req := ShowRequestFromForm(url.Values{"artist_id": {" 1 "}, "venue_id": {"x"}, "start_time": {""}})

	assert.Equal(t, "1", req.ArtistID)
	errs := utils.ValidateStruct(req)
	assert.Equal(t, "Must be a number", errs["venue_id"])
	assert.Equal(t, "This field is required", errs["start_time"])
}

func TestSearchTermFromForm(t *testing.T) {
	assert.Equal(t, "band", SearchTermFromForm(url.Values{"search_term": {"  band "}}))
	assert.Equal(t, "", SearchTermFromForm(url.Values{}))
}
