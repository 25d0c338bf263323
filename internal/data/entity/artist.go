package entity

type Artist struct {
	Base
	Name               string  `db:"name"`
	City               string  `db:"city"`
	State              string  `db:"state"`
	Phone              *string `db:"phone"`
	Genres             string  `db:"genres"`
	ImageLink          *string `db:"image_link"`
	FacebookLink       *string `db:"facebook_link"`
	Website            *string `db:"website"`
	SeekingVenue       bool    `db:"seeking_venue"`
	SeekingDescription *string `db:"seeking_description"`
}
