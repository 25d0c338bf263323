package repository

import (
	"fyyur/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Venue  VenueRepository
	Artist ArtistRepository
	Show   ShowRepository
}

// NewRepository builds every repository over db, which may be the pool or an
// open transaction.
func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Venue:  NewVenueRepository(db, log),
		Artist: NewArtistRepository(db, log),
		Show:   NewShowRepository(db, log),
	}
}
