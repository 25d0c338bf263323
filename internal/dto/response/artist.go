package response

import (
	"fyyur/internal/data/entity"
	"fyyur/internal/listing"
	"fyyur/pkg/utils"
)

type ArtistResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtistShowResponse is a show on an artist page; the counterpart is the venue.
type ArtistShowResponse struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type ArtistDetailResponse struct {
	ArtistResponse
	Genres             []string             `json:"genres"`
	City               string               `json:"city"`
	State              string               `json:"state"`
	Phone              string               `json:"phone"`
	Website            string               `json:"website"`
	FacebookLink       string               `json:"facebook_link"`
	SeekingVenue       bool                 `json:"seeking_venue"`
	SeekingDescription string               `json:"seeking_description"`
	ImageLink          string               `json:"image_link"`
	PastShows          []ArtistShowResponse `json:"past_shows"`
	UpcomingShows      []ArtistShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                  `json:"past_shows_count"`
	UpcomingShowsCount int                  `json:"upcoming_shows_count"`
}

func ArtistToResponse(artist *entity.Artist) ArtistResponse {
	return ArtistResponse{ID: artist.ID, Name: artist.Name}
}

func ArtistToDetailResponse(artist *entity.Artist, shows listing.Partition) ArtistDetailResponse {
	return ArtistDetailResponse{
		ArtistResponse:     ArtistToResponse(artist),
		Genres:             listing.DecodeGenres(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              utils.StringValue(artist.Phone),
		Website:            utils.StringValue(artist.Website),
		FacebookLink:       utils.StringValue(artist.FacebookLink),
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: utils.StringValue(artist.SeekingDescription),
		ImageLink:          utils.StringValue(artist.ImageLink),
		PastShows:          artistShows(shows.Past),
		UpcomingShows:      artistShows(shows.Upcoming),
		PastShowsCount:     shows.PastCount,
		UpcomingShowsCount: shows.UpcomingCount,
	}
}

func artistShows(views []listing.ShowView) []ArtistShowResponse {
	out := make([]ArtistShowResponse, len(views))
	for i, v := range views {
		out[i] = ArtistShowResponse{
			VenueID:        v.CounterpartID,
			VenueName:      v.CounterpartName,
			VenueImageLink: v.CounterpartImageLink,
			StartTime:      v.StartTime,
		}
	}
	return out
}
