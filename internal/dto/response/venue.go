package response

import (
	"fyyur/internal/data/entity"
	"fyyur/internal/listing"
	"fyyur/pkg/utils"
)

type VenueResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VenueShowResponse is a show on a venue page; the counterpart is the artist.
type VenueShowResponse struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type VenueDetailResponse struct {
	VenueResponse
	Genres             []string            `json:"genres"`
	Address            string              `json:"address"`
	City               string              `json:"city"`
	State              string              `json:"state"`
	Phone              string              `json:"phone"`
	Website            string              `json:"website"`
	FacebookLink       string              `json:"facebook_link"`
	SeekingTalent      bool                `json:"seeking_talent"`
	SeekingDescription string              `json:"seeking_description"`
	ImageLink          string              `json:"image_link"`
	PastShows          []VenueShowResponse `json:"past_shows"`
	UpcomingShows      []VenueShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

func VenueToResponse(venue *entity.Venue) VenueResponse {
	return VenueResponse{ID: venue.ID, Name: venue.Name}
}

func VenueToDetailResponse(venue *entity.Venue, shows listing.Partition) VenueDetailResponse {
	return VenueDetailResponse{
		VenueResponse:      VenueToResponse(venue),
		Genres:             listing.DecodeGenres(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              utils.StringValue(venue.Phone),
		Website:            utils.StringValue(venue.Website),
		FacebookLink:       utils.StringValue(venue.FacebookLink),
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: utils.StringValue(venue.SeekingDescription),
		ImageLink:          utils.StringValue(venue.ImageLink),
		PastShows:          venueShows(shows.Past),
		UpcomingShows:      venueShows(shows.Upcoming),
		PastShowsCount:     shows.PastCount,
		UpcomingShowsCount: shows.UpcomingCount,
	}
}

func venueShows(views []listing.ShowView) []VenueShowResponse {
	out := make([]VenueShowResponse, len(views))
	for i, v := range views {
		out[i] = VenueShowResponse{
			ArtistID:        v.CounterpartID,
			ArtistName:      v.CounterpartName,
			ArtistImageLink: v.CounterpartImageLink,
			StartTime:       v.StartTime,
		}
	}
	return out
}
