package duffel

import "github.com/flight-search/flight-offer-service/internal/domain"

// offerRequestPayload is the body of POST /air/offer_requests.
type offerRequestPayload struct {
	Data offerRequestData `json:"data"`
}

type offerRequestData struct {
	Slices     []slicePayload     `json:"slices"`
	Passengers []passengerPayload `json:"passengers"`
	CabinClass string             `json:"cabin_class"`
}

type slicePayload struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type passengerPayload struct {
	Type string `json:"type"`
}

// offerRequestResponse is the subset of the offer request we need.
type offerRequestResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type offersResponse struct {
	Data []domain.RawOffer `json:"data"`
}

type placesResponse struct {
	Data []place `json:"data"`
}

// place is a Duffel place suggestion (airport or city).
type place struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	IATACode        string `json:"iata_code"`
	Name            string `json:"name"`
	CityName        string `json:"city_name"`
	IATACountryCode string `json:"iata_country_code"`
}

// newOfferRequestPayload builds one slice per direction and one adult
// passenger per seat.
func newOfferRequestPayload(req domain.SearchRequest) offerRequestPayload {
	slices := []slicePayload{{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
	}}
	if req.IsRoundTrip() {
		slices = append(slices, slicePayload{
			Origin:        req.Destination,
			Destination:   req.Origin,
			DepartureDate: req.ReturnDate,
		})
	}

	passengers := make([]passengerPayload, max(req.Passengers, 1))
	for i := range passengers {
		passengers[i] = passengerPayload{Type: "adult"}
	}

	cabin := req.CabinClass
	if cabin == "" {
		cabin = domain.CabinEconomy
	}

	return offerRequestPayload{Data: offerRequestData{
		Slices:     slices,
		Passengers: passengers,
		CabinClass: string(cabin),
	}}
}

func (p place) toSuggestion() domain.LocationSuggestion {
	t := domain.LocationAirport
	if p.Type == string(domain.LocationCity) {
		t = domain.LocationCity
	}
	return domain.LocationSuggestion{
		ID:          p.ID,
		Type:        t,
		IATACode:    p.IATACode,
		Name:        p.Name,
		CityName:    p.CityName,
		CountryCode: p.IATACountryCode,
	}
}
