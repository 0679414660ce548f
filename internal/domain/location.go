package domain

import "strings"

// LocationType distinguishes airports from cities in suggestions.
type LocationType string

// Location types.
const (
	LocationAirport LocationType = "airport"
	LocationCity    LocationType = "city"
)

// LocationSuggestion is an autocomplete entry for origin/destination pickers.
type LocationSuggestion struct {
	ID          string       `json:"id"`
	Type        LocationType `json:"type"`
	IATACode    string       `json:"iataCode"`
	Name        string       `json:"name"`
	CityName    string       `json:"cityName,omitempty"`
	CountryCode string       `json:"countryCode,omitempty"`
}

// Matches reports whether the suggestion matches query on code, name or city.
// Matching is case-insensitive; code matches are prefix matches.
func (l LocationSuggestion) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(l.IATACode), q) ||
		strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.CityName), q)
}
