package http

import (
	"strings"

	"github.com/flight-search/flight-offer-service/internal/domain"
)

// ToDomainRequest converts a validated SearchFlightsRequest to a domain.SearchRequest.
func ToDomainRequest(req *SearchFlightsRequest) domain.SearchRequest {
	cabin, ok := domain.ParseCabinClass(req.CabinClass)
	if !ok {
		cabin = domain.CabinEconomy
	}

	sr := domain.SearchRequest{
		Origin:        strings.ToUpper(req.Origin),
		Destination:   strings.ToUpper(req.Destination),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
		CabinClass:    cabin,
	}
	sr.SetDefaults()
	return sr
}

// normalizeLocation upper-cases and trims a location query parameter.
func normalizeLocation(location string) string {
	return strings.ToUpper(strings.TrimSpace(location))
}
