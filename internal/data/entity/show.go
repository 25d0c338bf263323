package entity

import (
	"time"
)

type Show struct {
	Base
	StartTime time.Time `db:"start_time"`
	VenueID   int64     `db:"venue_id"`
	ArtistID  int64     `db:"artist_id"`
}

// ShowDetail is a show joined with the display fields of both sides.
type ShowDetail struct {
	Show
	VenueName       string  `db:"venue_name"`
	VenueImageLink  *string `db:"venue_image_link"`
	ArtistName      string  `db:"artist_name"`
	ArtistImageLink *string `db:"artist_image_link"`
}
