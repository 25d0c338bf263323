package entity

// Venue stores Genres comma-joined, as it sits in the genres column.
type Venue struct {
	Base
	Name               string  `db:"name"`
	Address            string  `db:"address"`
	City               string  `db:"city"`
	State              string  `db:"state"`
	Phone              *string `db:"phone"`
	Genres             string  `db:"genres"`
	ImageLink          *string `db:"image_link"`
	FacebookLink       *string `db:"facebook_link"`
	Website            *string `db:"website"`
	SeekingTalent      bool    `db:"seeking_talent"`
	SeekingDescription *string `db:"seeking_description"`
}
