package listing

import "time"

// Show is a show seen from one side of the venue/artist relation: the
// counterpart is the artist when listing a venue's shows and the venue when
// listing an artist's shows.
type Show struct {
	ID                   int64
	StartTime            time.Time
	CounterpartID        int64
	CounterpartName      string
	CounterpartImageLink string
}

// ShowView is a denormalized show row ready for rendering.
type ShowView struct {
	CounterpartID        int64
	CounterpartName      string
	CounterpartImageLink string
	StartTime            string
}

// Partition splits shows relative to a single instant.
type Partition struct {
	Past          []ShowView
	Upcoming      []ShowView
	PastCount     int
	UpcomingCount int
}

// PartitionShows places every show in exactly one of Past (start before now)
// or Upcoming (start at or after now), keeping input order within each side.
func PartitionShows(shows []Show, now time.Time) Partition {
	p := Partition{Past: []ShowView{}, Upcoming: []ShowView{}}
	for _, s := range shows {
		view := ShowView{
			CounterpartID:        s.CounterpartID,
			CounterpartName:      s.CounterpartName,
			CounterpartImageLink: s.CounterpartImageLink,
			StartTime:            FormatStartTime(s.StartTime),
		}
		if IsUpcoming(s.StartTime, now) {
			p.Upcoming = append(p.Upcoming, view)
		} else {
			p.Past = append(p.Past, view)
		}
	}
	p.PastCount = len(p.Past)
	p.UpcomingCount = len(p.Upcoming)
	return p
}
