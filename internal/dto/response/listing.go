package response

import "fyyur/internal/listing"

type SummaryResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type LocationGroupResponse struct {
	City   string            `json:"city"`
	State  string            `json:"state"`
	Venues []SummaryResponse `json:"venues"`
}

type SearchResponse struct {
	Count int               `json:"count"`
	Data  []SummaryResponse `json:"data"`
}

// Helper converters
func SummariesToResponse(summaries []listing.Summary) []SummaryResponse {
	out := make([]SummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = SummaryResponse{ID: s.ID, Name: s.Name, NumUpcomingShows: s.NumUpcomingShows}
	}
	return out
}

func LocationGroupsToResponse(groups []listing.LocationGroup) []LocationGroupResponse {
	out := make([]LocationGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = LocationGroupResponse{
			City:   g.City,
			State:  g.State,
			Venues: SummariesToResponse(g.Venues),
		}
	}
	return out
}

func SearchToResponse(result listing.SearchResult) SearchResponse {
	return SearchResponse{
		Count: result.Count,
		Data:  SummariesToResponse(result.Data),
	}
}
