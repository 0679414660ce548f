// Package domain contains the core entities and rules of the flight offer service.
// These types are provider-agnostic; upstream wire shapes live in raw_offer.go.
package domain

import "fmt"

// FlightOffer is the flat, canonical form of a priced itinerary.
// It is the only offer shape exposed to callers and the UI.
type FlightOffer struct {
	// ID is the provider offer id (or a fixed id for fallback offers)
	ID string `json:"id"`

	// Airline is the marketing carrier name (e.g., "Emirates")
	Airline string `json:"airline"`

	// FlightNumber is carrier code plus number (e.g., "EK202")
	FlightNumber string `json:"flightNumber"`

	// Departure describes where and when the first segment leaves
	Departure FlightPoint `json:"departure"`

	// Arrival describes where and when the last segment lands
	Arrival FlightPoint `json:"arrival"`

	// Duration is a human-readable duration (e.g., "5h 30m")
	Duration string `json:"duration"`

	// Stops is the number of intermediate stops (0 = nonstop)
	Stops int `json:"stops"`

	// StopDetails lists the connection airports, empty for nonstop offers
	StopDetails string `json:"stopDetails,omitempty"`

	// Price is the total amount for all passengers
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency"`

	// Amenities are on-board amenity tags
	Amenities []string `json:"amenities"`

	// Baggage is the checked baggage allowance
	Baggage string `json:"baggage"`

	// CabinClass is the display label of the cabin
	CabinClass string `json:"cabinClass"`
}

// FlightPoint is one end of an offer (departure or arrival).
type FlightPoint struct {
	// Time is the local time in 24-hour HH:MM format
	Time string `json:"time"`

	// Airport is the IATA airport code
	Airport string `json:"airport"`

	// City is the city served by the airport
	City string `json:"city"`

	// Date is the local date in YYYY-MM-DD format
	Date string `json:"date"`
}

// FormatDuration renders total minutes as "Xh Ym", "Xh" or "Ym".
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// FormatStopDetails describes the connection airports of a multi-segment slice.
// Returns an empty string for nonstop itineraries.
func FormatStopDetails(connections []string) string {
	switch len(connections) {
	case 0:
		return ""
	case 1:
		return "1 stop (" + connections[0] + ")"
	default:
		details := fmt.Sprintf("%d stops (", len(connections))
		for i, c := range connections {
			if i > 0 {
				details += ", "
			}
			details += c
		}
		return details + ")"
	}
}
