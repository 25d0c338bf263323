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

type ArtistHandler struct {
	pages
	service usecase.ArtistService
}

func NewArtistHandler(service usecase.ArtistService, log *zap.Logger) *ArtistHandler {
	return &ArtistHandler{
		pages:   pages{log: log.With(zap.String("handler", "artist"))},
		service: service,
	}
}

// ListArtists handles GET /artists
func (h *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.ListArtists(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "list artists")
		return
	}

	h.render(w, r, http.StatusOK, "Artists", view.Artists(artists))
}

// SearchArtists handles POST /artists/search
func (h *ArtistHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	term := request.SearchTermFromForm(r.PostForm)

	result, err := h.service.Search(r.Context(), term)
	if err != nil {
		h.handleServiceError(w, r, err, "search artists")
		return
	}

	h.render(w, r, http.StatusOK, "Artist search", view.SearchResults("/artists", term, *result))
}

// GetArtist handles GET /artists/{id}
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(r)
	if !ok {
		h.artistNotFound(w, r)
		return
	}

	artist, err := h.service.GetArtist(r.Context(), artistID)
	if err != nil {
		h.handleServiceError(w, r, err, "get artist")
		return
	}

	h.render(w, r, http.StatusOK, artist.Name, view.ArtistDetail(*artist))
}

// CreateArtistForm handles GET /artists/create
func (h *ArtistHandler) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "New artist",
		view.ArtistForm("List a new artist", "/artists/create", request.ArtistRequest{}, nil))
}

// CreateArtist handles POST /artists/create
func (h *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	req := request.ArtistRequestFromForm(r.PostForm)

	artist, err := h.service.CreateArtist(r.Context(), &req)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.render(w, r, http.StatusBadRequest, "New artist",
				view.ArtistForm("List a new artist", "/artists/create", req, fields))
			return
		}
		h.handleServiceError(w, r, err, "create artist")
		return
	}

	flash.Write(w, r, flash.Success(fmt.Sprintf("Artist %s was successfully listed!", artist.Name)))
	redirect(w, r, "/")
}

// EditArtistForm handles GET /artists/{id}/edit
func (h *ArtistHandler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(r)
	if !ok {
		h.artistNotFound(w, r)
		return
	}

	req, err := h.service.GetArtistForm(r.Context(), artistID)
	if err != nil {
		h.handleServiceError(w, r, err, "get artist form")
		return
	}

	h.render(w, r, http.StatusOK, "Edit artist",
		view.ArtistForm("Edit artist "+req.Name, editPath("artists", artistID), *req, nil))
}

// EditArtist handles POST /artists/{id}/edit
func (h *ArtistHandler) EditArtist(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(r)
	if !ok {
		h.artistNotFound(w, r)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	req := request.ArtistRequestFromForm(r.PostForm)

	artist, err := h.service.UpdateArtist(r.Context(), artistID, &req)
	if err != nil {
		if fields, ok := validationErrors(err); ok {
			h.render(w, r, http.StatusBadRequest, "Edit artist",
				view.ArtistForm("Edit artist", editPath("artists", artistID), req, fields))
			return
		}
		h.handleServiceError(w, r, err, "update artist")
		return
	}

	flash.Write(w, r, flash.Success(fmt.Sprintf("Artist %s was successfully updated!", artist.Name)))
	redirect(w, r, fmt.Sprintf("/artists/%d", artistID))
}

// DeleteArtist handles DELETE /artists/{id}
func (h *ArtistHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(r)
	if !ok {
		utils.ResponseNotFound(w, "artist not found")
		return
	}

	if err := h.service.DeleteArtist(r.Context(), artistID); err != nil {
		h.handleDeleteError(w, r, err, "delete artist")
		return
	}

	flash.Write(w, r, flash.Success("Artist was successfully removed!"))
	utils.ResponseSuccess(w, "success", nil)
}

func (h *ArtistHandler) artistNotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r, "No artist with that ID exists.")
}

