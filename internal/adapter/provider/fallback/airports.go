package fallback

import "github.com/flight-search/flight-offer-service/internal/domain"

// airports is a small directory used when place suggestions are unavailable.
var airports = []domain.LocationSuggestion{
	airport("JFK", "John F. Kennedy International Airport", "New York", "US"),
	airport("LGA", "LaGuardia Airport", "New York", "US"),
	airport("EWR", "Newark Liberty International Airport", "Newark", "US"),
	airport("LAX", "Los Angeles International Airport", "Los Angeles", "US"),
	airport("SFO", "San Francisco International Airport", "San Francisco", "US"),
	airport("ORD", "O'Hare International Airport", "Chicago", "US"),
	airport("MIA", "Miami International Airport", "Miami", "US"),
	airport("LHR", "Heathrow Airport", "London", "GB"),
	airport("LGW", "Gatwick Airport", "London", "GB"),
	airport("CDG", "Charles de Gaulle Airport", "Paris", "FR"),
	airport("FRA", "Frankfurt Airport", "Frankfurt", "DE"),
	airport("AMS", "Amsterdam Airport Schiphol", "Amsterdam", "NL"),
	airport("FCO", "Leonardo da Vinci International Airport", "Rome", "IT"),
	airport("MAD", "Adolfo Suárez Madrid-Barajas Airport", "Madrid", "ES"),
	airport("IST", "Istanbul Airport", "Istanbul", "TR"),
	airport("DXB", "Dubai International Airport", "Dubai", "AE"),
	airport("DOH", "Hamad International Airport", "Doha", "QA"),
	airport("SIN", "Singapore Changi Airport", "Singapore", "SG"),
	airport("HND", "Haneda Airport", "Tokyo", "JP"),
	airport("BKK", "Suvarnabhumi Airport", "Bangkok", "TH"),
	airport("SYD", "Sydney Kingsford Smith Airport", "Sydney", "AU"),
	airport("CGK", "Soekarno-Hatta International Airport", "Jakarta", "ID"),
	airport("DPS", "Ngurah Rai International Airport", "Denpasar", "ID"),
}

func airport(code, name, city, country string) domain.LocationSuggestion {
	return domain.LocationSuggestion{
		ID:          "arp_" + code,
		Type:        domain.LocationAirport,
		IATACode:    code,
		Name:        name,
		CityName:    city,
		CountryCode: country,
	}
}

// SearchAirports returns directory entries matching query, at most limit
// entries (limit <= 0 means no limit). The result is never nil.
func SearchAirports(query string, limit int) []domain.LocationSuggestion {
	matches := make([]domain.LocationSuggestion, 0)
	for _, a := range airports {
		if !a.Matches(query) {
			continue
		}
		matches = append(matches, a)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches
}

// LookupAirport returns the directory entry for an IATA code.
func LookupAirport(code string) (domain.LocationSuggestion, bool) {
	for _, a := range airports {
		if a.IATACode == code {
			return a, true
		}
	}
	return domain.LocationSuggestion{}, false
}
