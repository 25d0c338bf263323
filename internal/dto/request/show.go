package request

import "net/url"

type ShowRequest struct {
	ArtistID  string `json:"artist_id" form:"artist_id" validate:"required,numeric"`
	VenueID   string `json:"venue_id" form:"venue_id" validate:"required,numeric"`
	StartTime string `json:"start_time" form:"start_time" validate:"required"`
}

func ShowRequestFromForm(form url.Values) ShowRequest {
	return ShowRequest{
		ArtistID:  formValue(form, "artist_id"),
		VenueID:   formValue(form, "venue_id"),
		StartTime: formValue(form, "start_time"),
	}
}
