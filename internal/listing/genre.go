package listing

import "strings"

const genreSeparator = ","

// EncodeGenres joins genres into the single string stored on a row.
// Blank entries are dropped.
func EncodeGenres(genres []string) string {
	return strings.Join(cleanGenres(genres), genreSeparator)
}

// DecodeGenres splits a stored genre string. An empty string decodes to an
// empty list, not to a list holding one empty genre.
func DecodeGenres(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return cleanGenres(strings.Split(raw, genreSeparator))
}

func cleanGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
