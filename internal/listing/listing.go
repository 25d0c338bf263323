// Package listing holds the read-model logic behind the venue and artist
// pages: grouping venues by location, splitting shows into past and upcoming,
// and name search. Everything here works on data already loaded for a single
// request and never touches storage.
package listing

import "time"

// DisplayLayout is the format used for show start times on rendered pages.
const DisplayLayout = "2006-01-02 15:04:05"

// Listing is the minimal view of a venue or artist the core works with.
// ShowTimes must already hold the start time of every show it owns.
type Listing struct {
	ID        int64
	Name      string
	City      string
	State     string
	ShowTimes []time.Time
}

// Summary is a listing annotated with its upcoming-show count.
type Summary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// IsUpcoming reports whether a show starting at start is upcoming at now.
// A show starting exactly at now counts as upcoming.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// CountUpcoming returns how many of times are upcoming at now.
func CountUpcoming(times []time.Time, now time.Time) int {
	n := 0
	for _, t := range times {
		if IsUpcoming(t, now) {
			n++
		}
	}
	return n
}

func summarize(l Listing, now time.Time) Summary {
	return Summary{
		ID:               l.ID,
		Name:             l.Name,
		NumUpcomingShows: CountUpcoming(l.ShowTimes, now),
	}
}
