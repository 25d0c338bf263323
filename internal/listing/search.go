package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// SearchResult is the outcome of a name search.
type SearchResult struct {
	Count int
	Data  []Summary
}

// SearchByName returns the listings whose name contains term, ignoring case.
// The term is trimmed first and an empty term matches everything. Results are
// sorted by name, case-insensitively, with id as tie-breaker.
func SearchByName(items []Listing, term string, now time.Time) SearchResult {
	needle := strings.ToLower(strings.TrimSpace(term))

	data := []Summary{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			data = append(data, summarize(item, now))
		}
	}

	slices.SortStableFunc(data, func(a, b Summary) int {
		if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return SearchResult{Count: len(data), Data: data}
}
