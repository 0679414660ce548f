package domain

// OfferRequestHandle is the opaque id the provider returns for an offer request.
// It is only valid for the search that created it.
type OfferRequestHandle string

// String returns the handle as a string.
func (h OfferRequestHandle) String() string {
	return string(h)
}

// RawOffer is the provider-native offer record as returned by GET /air/offers.
// It is owned by the poller while being transformed and discarded afterwards.
type RawOffer struct {
	ID            string     `json:"id"`
	TotalAmount   string     `json:"total_amount"`
	TotalCurrency string     `json:"total_currency"`
	Owner         RawCarrier `json:"owner"`
	Slices        []RawSlice `json:"slices"`
}

// RawSlice is one directional leg of a raw offer.
type RawSlice struct {
	Origin      RawPlace     `json:"origin"`
	Destination RawPlace     `json:"destination"`
	Duration    string       `json:"duration"`
	Segments    []RawSegment `json:"segments"`
}

// RawSegment is one physical flight within a slice.
type RawSegment struct {
	MarketingCarrier             RawCarrier `json:"marketing_carrier"`
	MarketingCarrierFlightNumber string     `json:"marketing_carrier_flight_number"`
	OperatingCarrier             RawCarrier `json:"operating_carrier"`
	Origin                       RawPlace   `json:"origin"`
	Destination                  RawPlace   `json:"destination"`
	DepartingAt                  string     `json:"departing_at"`
	ArrivingAt                   string     `json:"arriving_at"`
	Duration                     string     `json:"duration"`
}

// RawCarrier identifies an airline in provider payloads.
type RawCarrier struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
}

// RawPlace is an airport object in provider payloads.
type RawPlace struct {
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
	CityName string `json:"city_name"`
}
