package request

import (
	"net/url"

	"fyyur/pkg/utils"
)

type VenueRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=120"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,usstate"`
	Address            string   `json:"address" form:"address" validate:"required,max=120"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,min=10,max=15"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,max=500,url"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,max=120,url"`
	Website            string   `json:"website" form:"website" validate:"omitempty,max=120,url"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}

func VenueRequestFromForm(form url.Values) VenueRequest {
	return VenueRequest{
		Name:               formValue(form, "name"),
		City:               formValue(form, "city"),
		State:              formValue(form, "state"),
		Address:            formValue(form, "address"),
		Phone:              formValue(form, "phone"),
		Genres:             formList(form, "genres"),
		ImageLink:          formValue(form, "image_link"),
		FacebookLink:       formValue(form, "facebook_link"),
		Website:            formValue(form, "website"),
		SeekingTalent:      utils.ParseBool(form.Get("seeking_talent")),
		SeekingDescription: formValue(form, "seeking_description"),
	}
}
