package adaptor

import (
	"fyyur/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Page   *PageHandler
	Venue  *VenueHandler
	Artist *ArtistHandler
	Show   *ShowHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Page:   NewPageHandler(log),
		Venue:  NewVenueHandler(service.Venue, log),
		Artist: NewArtistHandler(service.Artist, log),
		Show:   NewShowHandler(service.Show, log),
	}
}
