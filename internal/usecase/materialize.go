package usecase

import (
	"time"

	"fyyur/internal/data/entity"
	"fyyur/internal/listing"
	"fyyur/pkg/utils"
)

// showTimesBy buckets show start times by the id key picks out.
func showTimesBy(shows []*entity.ShowDetail, key func(*entity.ShowDetail) int64) map[int64][]time.Time {
	out := make(map[int64][]time.Time)
	for _, s := range shows {
		id := key(s)
		out[id] = append(out[id], s.StartTime)
	}
	return out
}

func byVenue(s *entity.ShowDetail) int64  { return s.VenueID }
func byArtist(s *entity.ShowDetail) int64 { return s.ArtistID }

func venueListings(venues []*entity.Venue, shows []*entity.ShowDetail) []listing.Listing {
	times := showTimesBy(shows, byVenue)
	out := make([]listing.Listing, len(venues))
	for i, v := range venues {
		out[i] = listing.Listing{
			ID:        v.ID,
			Name:      v.Name,
			City:      v.City,
			State:     v.State,
			ShowTimes: times[v.ID],
		}
	}
	return out
}

func artistListings(artists []*entity.Artist, shows []*entity.ShowDetail) []listing.Listing {
	times := showTimesBy(shows, byArtist)
	out := make([]listing.Listing, len(artists))
	for i, a := range artists {
		out[i] = listing.Listing{
			ID:        a.ID,
			Name:      a.Name,
			City:      a.City,
			State:     a.State,
			ShowTimes: times[a.ID],
		}
	}
	return out
}

// venueSideShows views a venue's shows with the artist as counterpart.
func venueSideShows(shows []*entity.ShowDetail) []listing.Show {
	out := make([]listing.Show, len(shows))
	for i, s := range shows {
		out[i] = listing.Show{
			ID:                   s.ID,
			StartTime:            s.StartTime,
			CounterpartID:        s.ArtistID,
			CounterpartName:      s.ArtistName,
			CounterpartImageLink: utils.StringValue(s.ArtistImageLink),
		}
	}
	return out
}

// artistSideShows views an artist's shows with the venue as counterpart.
func artistSideShows(shows []*entity.ShowDetail) []listing.Show {
	out := make([]listing.Show, len(shows))
	for i, s := range shows {
		out[i] = listing.Show{
			ID:                   s.ID,
			StartTime:            s.StartTime,
			CounterpartID:        s.VenueID,
			CounterpartName:      s.VenueName,
			CounterpartImageLink: utils.StringValue(s.VenueImageLink),
		}
	}
	return out
}
