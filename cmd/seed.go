package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fyyur/internal/data/repository"
	"fyyur/internal/dto/request"
	"fyyur/internal/listing"
	"fyyur/internal/usecase"
	"fyyur/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SeedData is the demo catalogue loaded by the seed command.
type SeedData struct {
	Venues  []request.VenueRequest
	Artists []request.ArtistRequest
	// Shows pair a venue index with an artist index.
	Shows []SeedShow
}

type SeedShow struct {
	Venue, Artist int
	StartTime     time.Time
}

// DemoData returns three venues, three artists and a mix of past and
// upcoming shows relative to now.
func DemoData(now time.Time) SeedData {
	at := func(days int) time.Time {
		d := now.AddDate(0, 0, days)
		return time.Date(d.Year(), d.Month(), d.Day(), 21, 30, 0, 0, time.UTC)
	}

	return SeedData{
		Venues: []request.VenueRequest{
			{
				Name:               "The Musical Hop",
				Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
				Address:            "1015 Folsom Street",
				City:               "San Francisco",
				State:              "CA",
				Phone:              "123-123-1234",
				Website:            "https://www.themusicalhop.com",
				FacebookLink:       "https://www.facebook.com/TheMusicalHop",
				SeekingTalent:      true,
				SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
				ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?auto=format&fit=crop&w=400&q=60",
			},
			{
				Name:         "The Dueling Pianos Bar",
				Genres:       []string{"Classical", "R&B", "Hip-Hop"},
				Address:      "335 Delancey Street",
				City:         "New York",
				State:        "NY",
				Phone:        "914-003-1132",
				Website:      "https://www.theduelingpianos.com",
				FacebookLink: "https://www.facebook.com/theduelingpianos",
				ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?auto=format&fit=crop&w=750&q=80",
			},
			{
				Name:         "Park Square Live Music & Coffee",
				Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
				Address:      "34 Whiskey Moore Ave",
				City:         "San Francisco",
				State:        "CA",
				Phone:        "415-000-1234",
				Website:      "https://www.parksquarelivemusicandcoffee.com",
				FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
				ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?auto=format&fit=crop&w=747&q=80",
			},
		},
		Artists: []request.ArtistRequest{
			{
				Name:               "Guns N Petals",
				Genres:             []string{"Rock n Roll"},
				City:               "San Francisco",
				State:              "CA",
				Phone:              "326-123-5000",
				Website:            "https://www.gunsnpetalsband.com",
				FacebookLink:       "https://www.facebook.com/GunsNPetals",
				SeekingVenue:       true,
				SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
				ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?auto=format&fit=crop&w=300&q=80",
			},
			{
				Name:         "Matt Quevedo",
				Genres:       []string{"Jazz"},
				City:         "New York",
				State:        "NY",
				Phone:        "300-400-5000",
				FacebookLink: "https://www.facebook.com/mattquevedo923251523",
				ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?auto=format&fit=crop&w=334&q=80",
			},
			{
				Name:      "The Wild Sax Band",
				Genres:    []string{"Jazz", "Classical"},
				City:      "San Francisco",
				State:     "CA",
				Phone:     "432-325-5432",
				ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?auto=format&fit=crop&w=794&q=80",
			},
		},
		Shows: []SeedShow{
			{Venue: 0, Artist: 0, StartTime: at(-400)},
			{Venue: 2, Artist: 1, StartTime: at(-30)},
			{Venue: 2, Artist: 2, StartTime: at(14)},
			{Venue: 2, Artist: 2, StartTime: at(21)},
			{Venue: 1, Artist: 1, StartTime: at(60)},
		},
	}
}

// Seed loads data in a single transaction through the same services the web
// handlers use, so every record passes form validation.
func Seed(ctx context.Context, db database.PgxIface, data SeedData, clock listing.Clock, log *zap.Logger) error {
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		service := usecase.NewService(repository.NewRepository(tx, log), clock, log)

		venueIDs := make([]int64, len(data.Venues))
		for i := range data.Venues {
			venue, err := service.Venue.CreateVenue(ctx, &data.Venues[i])
			if err != nil {
				return fmt.Errorf("seed venue %q: %w", data.Venues[i].Name, err)
			}
			venueIDs[i] = venue.ID
		}

		artistIDs := make([]int64, len(data.Artists))
		for i := range data.Artists {
			artist, err := service.Artist.CreateArtist(ctx, &data.Artists[i])
			if err != nil {
				return fmt.Errorf("seed artist %q: %w", data.Artists[i].Name, err)
			}
			artistIDs[i] = artist.ID
		}

		for _, s := range data.Shows {
			req := &request.ShowRequest{
				VenueID:   strconv.FormatInt(venueIDs[s.Venue], 10),
				ArtistID:  strconv.FormatInt(artistIDs[s.Artist], 10),
				StartTime: s.StartTime.Format(time.RFC3339),
			}
			if _, err := service.Show.CreateShow(ctx, req); err != nil {
				return fmt.Errorf("seed show: %w", err)
			}
		}

		log.Info("Seed data loaded",
			zap.Int("venues", len(data.Venues)),
			zap.Int("artists", len(data.Artists)),
			zap.Int("shows", len(data.Shows)),
		)
		return nil
	})
}
