package view

import (
	"context"
	"slices"

	"fyyur/internal/data/entity"
	"fyyur/internal/dto/request"

	"github.com/a-h/templ"
)

// FieldErrors maps a form field name to the message shown beside it.
type FieldErrors map[string]string

func (h *html) fieldError(errs FieldErrors, name string) {
	if msg, ok := errs[name]; ok {
		h.tagf(`<p class="error" id="%s-error">`, name)
		h.text(msg)
		h.raw(`</p>`)
	}
}

func (h *html) input(errs FieldErrors, name, label, kind, value string) {
	h.tagf(`<div class="field"><label for="%s">`, name)
	h.text(label)
	h.tagf(`</label><input type="%s" id="%s" name="%s" value="`, kind, name, name)
	h.text(value)
	h.raw(`">`)
	h.fieldError(errs, name)
	h.raw(`</div>`)
}

func (h *html) textarea(errs FieldErrors, name, label, value string) {
	h.tagf(`<div class="field"><label for="%s">`, name)
	h.text(label)
	h.tagf(`</label><textarea id="%s" name="%s">`, name, name)
	h.text(value)
	h.raw(`</textarea>`)
	h.fieldError(errs, name)
	h.raw(`</div>`)
}

func (h *html) checkbox(name, label string, checked bool) {
	h.tagf(`<div class="field"><input type="checkbox" id="%s" name="%s" value="y"`, name, name)
	if checked {
		h.raw(` checked`)
	}
	h.tagf(`><label for="%s">`, name)
	h.text(label)
	h.raw(`</label></div>`)
}

func (h *html) selectField(errs FieldErrors, name, label string, options, selected []string, multiple bool) {
	h.tagf(`<div class="field"><label for="%s">`, name)
	h.text(label)
	h.tagf(`</label><select id="%s" name="%s"`, name, name)
	if multiple {
		h.raw(` multiple`)
	}
	h.raw(`>`)
	for _, opt := range options {
		h.raw(`<option value="`)
		h.text(opt)
		h.raw(`"`)
		if slices.Contains(selected, opt) {
			h.raw(` selected`)
		}
		h.raw(`>`)
		h.text(opt)
		h.raw(`</option>`)
	}
	h.raw(`</select>`)
	h.fieldError(errs, name)
	h.raw(`</div>`)
}

func (h *html) formOpen(title, action string) {
	h.raw(`<h1>`)
	h.text(title)
	h.raw(`</h1><form method="post" action="`)
	h.text(string(templ.URL(action)))
	h.raw(`">`)
}

func (h *html) formClose(submit string) {
	h.raw(`<button type="submit">`)
	h.text(submit)
	h.raw(`</button></form>`)
}

// VenueForm renders the create or edit form; action is the POST target.
func VenueForm(title, action string, req request.VenueRequest, errs FieldErrors) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.formOpen(title, action)
		h.input(errs, "name", "Name", "text", req.Name)
		h.input(errs, "city", "City", "text", req.City)
		h.selectField(errs, "state", "State", entity.States, []string{req.State}, false)
		h.input(errs, "address", "Address", "text", req.Address)
		h.input(errs, "phone", "Phone", "tel", req.Phone)
		h.selectField(errs, "genres", "Genres", entity.Genres, req.Genres, true)
		h.input(errs, "image_link", "Image link", "url", req.ImageLink)
		h.input(errs, "facebook_link", "Facebook link", "url", req.FacebookLink)
		h.input(errs, "website", "Website", "url", req.Website)
		h.checkbox("seeking_talent", "Looking for talent", req.SeekingTalent)
		h.textarea(errs, "seeking_description", "Seeking description", req.SeekingDescription)
		h.formClose("Save venue")
	})
}

func ArtistForm(title, action string, req request.ArtistRequest, errs FieldErrors) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.formOpen(title, action)
		h.input(errs, "name", "Name", "text", req.Name)
		h.input(errs, "city", "City", "text", req.City)
		h.selectField(errs, "state", "State", entity.States, []string{req.State}, false)
		h.input(errs, "phone", "Phone", "tel", req.Phone)
		h.selectField(errs, "genres", "Genres", entity.Genres, req.Genres, true)
		h.input(errs, "image_link", "Image link", "url", req.ImageLink)
		h.input(errs, "facebook_link", "Facebook link", "url", req.FacebookLink)
		h.input(errs, "website", "Website", "url", req.Website)
		h.checkbox("seeking_venue", "Looking for venues", req.SeekingVenue)
		h.textarea(errs, "seeking_description", "Seeking description", req.SeekingDescription)
		h.formClose("Save artist")
	})
}

func ShowForm(req request.ShowRequest, errs FieldErrors) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.formOpen("List a new show", "/shows/create")
		h.input(errs, "artist_id", "Artist ID", "text", req.ArtistID)
		h.input(errs, "venue_id", "Venue ID", "text", req.VenueID)
		h.input(errs, "start_time", "Start time", "text", req.StartTime)
		h.formClose("Create show")
	})
}
