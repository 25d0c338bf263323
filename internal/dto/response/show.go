package response

import (
	"fyyur/internal/data/entity"
	"fyyur/internal/listing"
	"fyyur/pkg/utils"
)

type ShowResponse struct {
	ID              int64  `json:"id"`
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func ShowToResponse(show *entity.ShowDetail) ShowResponse {
	return ShowResponse{
		ID:              show.ID,
		VenueID:         show.VenueID,
		VenueName:       show.VenueName,
		ArtistID:        show.ArtistID,
		ArtistName:      show.ArtistName,
		ArtistImageLink: utils.StringValue(show.ArtistImageLink),
		StartTime:       listing.FormatStartTime(show.StartTime),
	}
}
