package adaptor

import (
	"errors"
	"net/http"

	"fyyur/internal/usecase"
	"fyyur/internal/view"
	"fyyur/pkg/flash"
	"fyyur/pkg/utils"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// pages renders HTML pages inside the site layout.
type pages struct {
	log *zap.Logger
}

func (p pages) render(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	page := view.Page{Title: title}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		page.Notice = &notice
	}
	templ.Handler(view.Layout(page, body), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (p pages) notFound(w http.ResponseWriter, r *http.Request, message string) {
	p.render(w, r, http.StatusNotFound, "Not found", view.ErrorPage(http.StatusNotFound, message))
}

func (p pages) serverError(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusInternalServerError, "Server error",
		view.ErrorPage(http.StatusInternalServerError, "Something went wrong on our side. Please try again."))
}

func (p pages) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	p.render(w, r, http.StatusBadRequest, "Bad request", view.ErrorPage(http.StatusBadRequest, message))
}

// handleServiceError maps a service failure onto an error page.
func (p pages) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		p.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("request_id", requestID))
		p.notFound(w, r, "The page you are looking for does not exist.")

	default:
		p.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("request_id", requestID))
		p.serverError(w, r)
	}
}

// handleDeleteError answers a DELETE with the JSON envelope.
func (p pages) handleDeleteError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())

	if errors.Is(err, usecase.ErrNotFound) {
		p.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("request_id", requestID))
		utils.ResponseNotFound(w, err.Error())
		return
	}

	p.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("request_id", requestID))
	flash.Write(w, r, flash.Error("An error occurred. The record could not be removed."))
	utils.ResponseInternalError(w, "Internal server error")
}

// pathID reads the {id} URL parameter; ok is false when it is not a valid id.
func pathID(r *http.Request) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	return id, err == nil
}

// parseForm loads r.PostForm, answering 400 when the body cannot be read.
func (p pages) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		p.log.Warn("Invalid form body", zap.Error(err), zap.String("path", r.URL.Path))
		p.badRequest(w, r, "The submitted form could not be read.")
		return false
	}
	return true
}

// validationErrors returns the field messages of a rejected form.
func validationErrors(err error) (view.FieldErrors, bool) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return view.FieldErrors(verr.Fields), true
	}
	return nil, false
}

func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

type PageHandler struct {
	pages
}

func NewPageHandler(log *zap.Logger) *PageHandler {
	return &PageHandler{pages{log: log.With(zap.String("handler", "page"))}}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "", view.Home())
}

// NotFound handles every unmatched route.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r, "The page you are looking for does not exist.")
}

// ServerErrorHandler renders the 500 page; Recover falls back to it.
func (h *PageHandler) ServerErrorHandler() http.Handler {
	return http.HandlerFunc(h.serverError)
}

// Health handles GET /health
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
