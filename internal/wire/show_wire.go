package wire

import (
	"fyyur/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShow(r chi.Router, showHandler *adaptor.ShowHandler) {
	r.Get("/shows", showHandler.ListShows)
	r.Get("/shows/create", showHandler.CreateShowForm)
	r.Post("/shows/create", showHandler.CreateShow)
}
