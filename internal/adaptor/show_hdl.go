package adaptor

import (
	"net/http"

	"fyyur/internal/dto/request"
	"fyyur/internal/usecase"
	"fyyur/internal/view"
	"fyyur/pkg/flash"

	"go.uber.org/zap"
)

type ShowHandler struct {
	pages
	service usecase.ShowService
}

func NewShowHandler(service usecase.ShowService, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		pages:   pages{log: log.With(zap.String("handler", "show"))},
		service: service,
	}
}

// ListShows handles GET /shows
func (h *ShowHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.ListShows(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "list shows")
		return
	}

	h.render(w, r, http.StatusOK, "Shows", view.Shows(shows))
}

// CreateShowForm handles GET /shows/create
func (h *ShowHandler) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "New show", view.ShowForm(request.ShowRequest{}, nil))
}

// CreateShow handles POST /shows/create
func (h *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	req := request.ShowRequestFromForm(r.PostForm)

	if _, err := h.service.CreateShow(r.Context(), &req); err != nil {
		if fields, ok := validationErrors(err); ok {
			h.render(w, r, http.StatusBadRequest, "New show", view.ShowForm(req, fields))
			return
		}
		h.handleServiceError(w, r, err, "create show")
		return
	}

	flash.Write(w, r, flash.Success("Show was successfully listed!"))
	redirect(w, r, "/")
}
