package listing

import (
	"cmp"
	"slices"
	"time"
)

// LocationGroup is one (state, city) bucket on the venues page.
type LocationGroup struct {
	State  string
	City   string
	Venues []Summary
}

type location struct {
	state string
	city  string
}

// GroupVenuesByLocation buckets venues by (state, city). Groups are ordered by
// state then city; venues inside a group keep their input order. Pairs are
// collected from the whole input, so non-adjacent venues sharing a location
// still end up in one group.
func GroupVenuesByLocation(venues []Listing, now time.Time) []LocationGroup {
	seen := make(map[location]struct{}, len(venues))
	var locations []location
	for _, v := range venues {
		loc := location{state: v.State, city: v.City}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		locations = append(locations, loc)
	}

	slices.SortFunc(locations, func(a, b location) int {
		if c := cmp.Compare(a.state, b.state); c != 0 {
			return c
		}
		return cmp.Compare(a.city, b.city)
	})

	groups := make([]LocationGroup, 0, len(locations))
	for _, loc := range locations {
		group := LocationGroup{State: loc.state, City: loc.city, Venues: []Summary{}}
		for _, v := range venues {
			if v.State == loc.state && v.City == loc.city {
				group.Venues = append(group.Venues, summarize(v, now))
			}
		}
		groups = append(groups, group)
	}
	return groups
}
