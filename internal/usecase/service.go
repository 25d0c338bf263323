package usecase

import (
	"fyyur/internal/data/repository"
	"fyyur/internal/listing"

	"go.uber.org/zap"
)

type Service struct {
	Venue  VenueService
	Artist ArtistService
	Show   ShowService
}

// NewService reads the current time from clock wherever a show must be
// classified as past or upcoming.
func NewService(repo *repository.Repository, clock listing.Clock, log *zap.Logger) *Service {
	return &Service{
		Venue:  NewVenueService(repo, clock, log),
		Artist: NewArtistService(repo, clock, log),
		Show:   NewShowService(repo, clock, log),
	}
}
