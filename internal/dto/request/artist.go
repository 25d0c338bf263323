package request

import (
	"net/url"

	"fyyur/pkg/utils"
)

type ArtistRequest struct {
	Name               string   `json:"name" form:"name" validate:"required,max=120"`
	City               string   `json:"city" form:"city" validate:"required,max=120"`
	State              string   `json:"state" form:"state" validate:"required,usstate"`
	Phone              string   `json:"phone" form:"phone" validate:"omitempty,min=10,max=15"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,max=500,url"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,max=120,url"`
	Website            string   `json:"website" form:"website" validate:"omitempty,max=120,url"`
	SeekingVenue       bool     `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}

func ArtistRequestFromForm(form url.Values) ArtistRequest {
	return ArtistRequest{
		Name:               formValue(form, "name"),
		City:               formValue(form, "city"),
		State:              formValue(form, "state"),
		Phone:              formValue(form, "phone"),
		Genres:             formList(form, "genres"),
		ImageLink:          formValue(form, "image_link"),
		FacebookLink:       formValue(form, "facebook_link"),
		Website:            formValue(form, "website"),
		SeekingVenue:       utils.ParseBool(form.Get("seeking_venue")),
		SeekingDescription: formValue(form, "seeking_description"),
	}
}
