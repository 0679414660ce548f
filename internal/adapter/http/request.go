// Package http provides the HTTP handler layer for the flight offer API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"strings"
	"time"

	"github.com/flight-search/flight-offer-service/internal/domain"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin" example:"JFK"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination" example:"LAX"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-07-15"`

	// ReturnDate is the optional return date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty" example:"2025-07-22"`

	// Passengers is the number of adult passengers (1-9, default 1)
	Passengers int `json:"passengers" example:"1"`

	// CabinClass is economy, premium_economy, business or first (optional)
	CabinClass string `json:"cabinClass,omitempty" example:"economy"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
// When a field fails more than once the first message wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, exists := result[e.Field]; !exists {
			result[e.Field] = e.Message
		}
	}
	return result
}

// Validate validates the search request, normalizing codes and the cabin
// class in place, and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = r.validateAirport(errs, "origin", r.Origin)
	r.Destination = r.validateAirport(errs, "destination", r.Destination)

	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	departure, ok := r.validateDate(errs, "departureDate", r.DepartureDate, true)
	if ret, retOK := r.validateDate(errs, "returnDate", r.ReturnDate, false); ok && retOK && !ret.IsZero() {
		if ret.Before(departure) {
			errs.Add("returnDate", "returnDate cannot be before departureDate")
		}
	}

	r.validatePassengers(errs)
	r.validateCabinClass(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateAirport returns the upper-cased code, or the input unchanged when invalid.
func (r *SearchFlightsRequest) validateAirport(errs *ValidationErrors, field, value string) string {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, field+" is required")
		return value
	}

	code := strings.ToUpper(strings.TrimSpace(value))
	if !domain.IsAirportCode(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return value
	}
	return code
}

func (r *SearchFlightsRequest) validateDate(errs *ValidationErrors, field, value string, required bool) (time.Time, bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
			return time.Time{}, false
		}
		return time.Time{}, true
	}

	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		errs.Add(field, field+" must be a valid date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return t, true
}

func (r *SearchFlightsRequest) validatePassengers(errs *ValidationErrors) {
	// Zero means the field was omitted; defaults to one passenger
	if r.Passengers == 0 {
		r.Passengers = 1
		return
	}
	if r.Passengers < 1 {
		errs.Add("passengers", "passengers must be at least 1")
		return
	}
	if r.Passengers > domain.MaxPassengers {
		errs.Add("passengers", fmt.Sprintf("passengers cannot exceed %d", domain.MaxPassengers))
	}
}

func (r *SearchFlightsRequest) validateCabinClass(errs *ValidationErrors) {
	if r.CabinClass == "" {
		r.CabinClass = string(domain.CabinEconomy)
		return
	}

	cabin, ok := domain.ParseCabinClass(r.CabinClass)
	if !ok {
		errs.Add("cabinClass", "cabinClass must be one of: economy, premium_economy, business, first")
		return
	}
	r.CabinClass = string(cabin)
}
