package wire

import (
	"fyyur/internal/adaptor"
	"fyyur/internal/data/repository"
	"fyyur/internal/listing"
	"fyyur/internal/usecase"
	"fyyur/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers over repo and mounts every route.
func Wiring(repo *repository.Repository, clock listing.Clock, logger *zap.Logger) *App {
	service := usecase.NewService(repo, clock, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Logger runs first so Recover sees the request id.
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger, handler.Page.ServerErrorHandler()))

	r.NotFound(handler.Page.NotFound)

	r.Get("/", handler.Page.Home)
	r.Get("/health", handler.Page.Health)

	wireVenue(r, handler.Venue)
	wireArtist(r, handler.Artist)
	wireShow(r, handler.Show)

	return r
}
