package response

import (
	"testing"
	"time"

	"fyyur/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestShowToResponse(t *testing.T) {
	image := "https://img.example/gnp.jpg"
	show := &entity.ShowDetail{
		Show: entity.Show{
			Base:      entity.Base{ID: 3},
			StartTime: time.Date(2035, 4, 1, 13, 0, 0, 0, time.FixedZone("PDT", -7*60*60)),
			VenueID:   1,
			ArtistID:  4,
		},
		VenueName:       "The Musical Hop",
		ArtistName:      "Guns N Petals",
		ArtistImageLink: &image,
	}

	got := ShowToResponse(show)

	assert.Equal(t, ShowResponse{
		ID:              3,
		VenueID:         1,
		VenueName:       "The Musical Hop",
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: image,
		StartTime:       "2035-04-01 20:00:00",
	}, got)
}
