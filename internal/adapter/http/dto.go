package http

import (
	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/usecase"
)

// SearchResponseDTO is the body of POST /flights/search.
type SearchResponseDTO struct {
	Flights        []FlightOfferDTO `json:"flights"`
	Source         string           `json:"source" example:"live"`
	FallbackReason string           `json:"fallbackReason,omitempty" example:"upstream_error"`
	Metadata       MetadataDTO      `json:"metadata"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	OfferRequestID string `json:"offerRequestId,omitempty" example:"orq_0000AgZitCiqHyg5kq1BZI"`
	PollAttempts   int    `json:"pollAttempts" example:"2"`
	TotalResults   int    `json:"totalResults" example:"2"`
	SearchTimeMs   int64  `json:"searchTimeMs" example:"2310"`
}

// FlightOfferDTO is the flat offer shape rendered by the UI.
type FlightOfferDTO struct {
	ID           string         `json:"id" example:"off_0000AgZitCiqHyg5kq1BZK"`
	Airline      string         `json:"airline" example:"Delta Air Lines"`
	FlightNumber string         `json:"flightNumber" example:"DL423"`
	Departure    FlightPointDTO `json:"departure"`
	Arrival      FlightPointDTO `json:"arrival"`
	Duration     string         `json:"duration" example:"6h 15m"`
	Stops        int            `json:"stops" example:"0"`
	StopDetails  string         `json:"stopDetails,omitempty" example:"1 stop (ORD)"`
	Price        float64        `json:"price" example:"349.5"`
	Currency     string         `json:"currency" example:"USD"`
	Amenities    []string       `json:"amenities"`
	Baggage      string         `json:"baggage" example:"1 x 23kg checked"`
	CabinClass   string         `json:"cabinClass" example:"Economy"`
}

// FlightPointDTO represents a departure or arrival point.
type FlightPointDTO struct {
	Time    string `json:"time" example:"08:00"`
	Airport string `json:"airport" example:"JFK"`
	City    string `json:"city" example:"New York"`
	Date    string `json:"date" example:"2025-07-15"`
}

// UpcomingFlightsDTO is the body of GET /flights/upcoming.
type UpcomingFlightsDTO struct {
	Flights        []FlightOfferDTO `json:"flights"`
	Location       string           `json:"location" example:"JFK"`
	Count          int              `json:"count" example:"2"`
	Source         string           `json:"source" example:"live"`
	FallbackReason string           `json:"fallbackReason,omitempty"`
}

// LocationsResponseDTO is the body of GET /locations/search.
type LocationsResponseDTO struct {
	Locations []LocationDTO `json:"locations"`
}

// LocationDTO is a single autocomplete suggestion.
type LocationDTO struct {
	ID          string `json:"id" example:"arp_lhr_gb"`
	Type        string `json:"type" example:"airport"`
	IATACode    string `json:"iataCode" example:"LHR"`
	Name        string `json:"name" example:"Heathrow Airport"`
	CityName    string `json:"cityName,omitempty" example:"London"`
	CountryCode string `json:"countryCode,omitempty" example:"GB"`
}

// ToSearchResponseDTO converts a domain SearchResult to a SearchResponseDTO.
func ToSearchResponseDTO(result *domain.SearchResult) *SearchResponseDTO {
	if result == nil {
		return nil
	}

	return &SearchResponseDTO{
		Flights:        ToFlightOfferDTOs(result.Flights),
		Source:         string(result.Source),
		FallbackReason: string(result.FallbackReason),
		Metadata: MetadataDTO{
			OfferRequestID: result.Metadata.OfferRequestID,
			PollAttempts:   result.Metadata.PollAttempts,
			TotalResults:   result.Metadata.TotalResults,
			SearchTimeMs:   result.Metadata.SearchTimeMs,
		},
	}
}

// ToUpcomingFlightsDTO converts the upcoming listing to its response DTO.
func ToUpcomingFlightsDTO(upcoming *usecase.UpcomingFlights) *UpcomingFlightsDTO {
	if upcoming == nil {
		return nil
	}

	return &UpcomingFlightsDTO{
		Flights:        ToFlightOfferDTOs(upcoming.Flights),
		Location:       upcoming.Location,
		Count:          upcoming.Count,
		Source:         string(upcoming.Source),
		FallbackReason: string(upcoming.Reason),
	}
}

// ToFlightOfferDTOs converts offers, always returning a non-nil slice.
func ToFlightOfferDTOs(offers []domain.FlightOffer) []FlightOfferDTO {
	dtos := make([]FlightOfferDTO, len(offers))
	for i := range offers {
		dtos[i] = ToFlightOfferDTO(&offers[i])
	}
	return dtos
}

// ToFlightOfferDTO converts a domain FlightOffer to a FlightOfferDTO.
func ToFlightOfferDTO(offer *domain.FlightOffer) FlightOfferDTO {
	amenities := make([]string, len(offer.Amenities))
	copy(amenities, offer.Amenities)

	return FlightOfferDTO{
		ID:           offer.ID,
		Airline:      offer.Airline,
		FlightNumber: offer.FlightNumber,
		Departure:    toFlightPointDTO(offer.Departure),
		Arrival:      toFlightPointDTO(offer.Arrival),
		Duration:     offer.Duration,
		Stops:        offer.Stops,
		StopDetails:  offer.StopDetails,
		Price:        offer.Price,
		Currency:     offer.Currency,
		Amenities:    amenities,
		Baggage:      offer.Baggage,
		CabinClass:   offer.CabinClass,
	}
}

func toFlightPointDTO(p domain.FlightPoint) FlightPointDTO {
	return FlightPointDTO{
		Time:    p.Time,
		Airport: p.Airport,
		City:    p.City,
		Date:    p.Date,
	}
}

// ToLocationsResponseDTO wraps suggestions in the locations envelope.
func ToLocationsResponseDTO(locations []domain.LocationSuggestion) *LocationsResponseDTO {
	dto := &LocationsResponseDTO{
		Locations: make([]LocationDTO, len(locations)),
	}
	for i, l := range locations {
		dto.Locations[i] = LocationDTO{
			ID:          l.ID,
			Type:        string(l.Type),
			IATACode:    l.IATACode,
			Name:        l.Name,
			CityName:    l.CityName,
			CountryCode: l.CountryCode,
		}
	}
	return dto
}
