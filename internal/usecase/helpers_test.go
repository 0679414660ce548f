package usecase

import (
	"fmt"

	"github.com/flight-search/flight-offer-service/internal/domain"
)

// rawPlace builds an airport object as the provider returns it.
func rawPlace(code, city string) domain.RawPlace {
	return domain.RawPlace{IATACode: code, Name: city + " Airport", CityName: city}
}

// createRawOffer builds a one-slice raw offer flying through the given
// airports, e.g. createRawOffer("off_1", "JFK", "DXB", "LAX") has one stop.
func createRawOffer(id string, route ...string) domain.RawOffer {
	segments := make([]domain.RawSegment, 0, len(route)-1)
	for i := 0; i < len(route)-1; i++ {
		segments = append(segments, domain.RawSegment{
			MarketingCarrier:             domain.RawCarrier{Name: "Delta Air Lines", IATACode: "DL"},
			MarketingCarrierFlightNumber: fmt.Sprintf("%d", 400+i),
			Origin:                       rawPlace(route[i], route[i]+" City"),
			Destination:                  rawPlace(route[i+1], route[i+1]+" City"),
			DepartingAt:                  fmt.Sprintf("2025-07-15T%02d:00:00", 8+i*4),
			ArrivingAt:                   fmt.Sprintf("2025-07-15T%02d:30:00", 10+i*4),
			Duration:                     "PT2H30M",
		})
	}

	return domain.RawOffer{
		ID:            id,
		TotalAmount:   "349.50",
		TotalCurrency: "USD",
		Owner:         domain.RawCarrier{Name: "Delta Air Lines", IATACode: "DL"},
		Slices: []domain.RawSlice{{
			Origin:      rawPlace(route[0], route[0]+" City"),
			Destination: rawPlace(route[len(route)-1], route[len(route)-1]+" City"),
			Duration:    "PT5H30M",
			Segments:    segments,
		}},
	}
}
