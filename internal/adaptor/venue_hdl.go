package adaptor

import (
	"fmt"
	"net/http"

	"fyyur/internal/dto/request"
	"fyyur/internal/usecase"
	"fyyur/internal/view"
	"fyyur/pkg/flash"
	"fyyur/pkg/utils"

	"go.uber.org/zap"
)

type VenueHandler struct {
	pages
	service usecase.VenueService
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		pages:   pages{log: log.With(zap.String("handler", "venue"))},
		service: service,
	}
}

// ListVenues handles GET /venues
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListByLocation(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "list venues")
		return
	}

	h.render(w, r, http.StatusOK, "Venues", view.Venues(groups))
}

// SearchVenues handles POST /venues/search
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	term := request.SearchTermFromForm(r.PostForm)

	result, err := h.service.Search(r.Context(), term)
	if err != nil {
		h.handleServiceError(w, r, err, "search venues")
		return
	}

	h.render(w, r, http.StatusOK, "Venue search", view.SearchResults("/venues", term, *result))
}

// GetVenue handles GET /venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := pathID(r)
	if !ok {
		h.venueNotFound(w, r)
		return
	}

	venue, err := h.service.GetVenue(r.Context(), venueID)
	if err != nil {
		h.handleServiceError(w, r, err, "get venue")
		return
	}

	h.render(w, r, http.StatusOK, venue.Name, view.VenueDetail(*venue))
}

// CreateVenueForm handles GET /venues/create
func (h *VenueHandler) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "New venue",
		view.VenueForm("List a new venue", "/venues/create", request.VenueRequest{}, nil))
}

// CreateVenue handles POST /venues/create
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	req := request.VenueRequestFromForm(r.PostForm)

	venue, err := h.service.CreateVenue(r.Context(), &req)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.render(w, r, http.StatusBadRequest, "New venue",
				view.VenueForm("List a new venue", "/venues/create", req, fields))
			return
		}
		h.handleServiceError(w, r, err, "create venue")
		return
	}

	flash.Write(w, r, flash.Success(fmt.Sprintf("Venue %s was successfully listed!", venue.Name)))
	redirect(w, r, "/")
}

// EditVenueForm handles GET /venues/{id}/edit
func (h *VenueHandler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	venueID, ok := pathID(r)
	if !ok {
		h.venueNotFound(w, r)
		return
	}

	req, err := h.service.GetVenueForm(r.Context(), venueID)
	if err != nil {
		h.handleServiceError(w, r, err, "get venue form")
		return
	}

	h.render(w, r, http.StatusOK, "Edit venue",
		view.VenueForm("Edit venue "+req.Name, editPath("venues", venueID), *req, nil))
}

// EditVenue handles POST /venues/{id}/edit
func (h *VenueHandler) EditVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := pathID(r)
	if !ok {
		h.venueNotFound(w, r)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	req := request.VenueRequestFromForm(r.PostForm)

	venue, err := h.service.UpdateVenue(r.Context(), venueID, &req)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.render(w, r, http.StatusBadRequest, "Edit venue",
				view.VenueForm("Edit venue", editPath("venues", venueID), req, fields))
			return
		}
		h.handleServiceError(w, r, err, "update venue")
		return
	}

	flash.Write(w, r, flash.Success(fmt.Sprintf("Venue %s was successfully updated!", venue.Name)))
	redirect(w, r, fmt.Sprintf("/venues/%d", venueID))
}

// DeleteVenue handles DELETE /venues/{id}
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := pathID(r)
	if !ok {
		utils.ResponseNotFound(w, "venue not found")
		return
	}

	if err := h.service.DeleteVenue(r.Context(), venueID); err != nil {
		h.handleDeleteError(w, r, err, "delete venue")
		return
	}

	flash.Write(w, r, flash.Success("Venue was successfully removed!"))
	utils.ResponseSuccess(w, "success", nil)
}

func (h *VenueHandler) venueNotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r, "No venue with that ID exists.")
}

func editPath(resource string, id int64) string {
	return fmt.Sprintf("/%s/%d/edit", resource, id)
}
