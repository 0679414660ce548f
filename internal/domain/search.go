package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar date format used by search requests and offers.
const DateLayout = "2006-01-02"

// MaxPassengers is the largest party a single offer request may carry.
const MaxPassengers = 9

// CabinClass is the requested travel class.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// IsValid reports whether c is one of the supported cabin classes.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// Label returns the display label for the cabin class (e.g., "Premium Economy").
func (c CabinClass) Label() string {
	switch c {
	case CabinPremiumEconomy:
		return "Premium Economy"
	case CabinBusiness:
		return "Business"
	case CabinFirst:
		return "First"
	default:
		return "Economy"
	}
}

// ParseCabinClass normalizes a user supplied cabin class.
// Hyphens and spaces are accepted in place of underscores ("premium-economy").
func ParseCabinClass(s string) (CabinClass, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	c := CabinClass(normalized)
	return c, c.IsValid()
}

// SearchRequest defines the parameters for a single flight offer search.
// It is constructed once per search and never persisted.
type SearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the number of adult passengers (default: 1)
	Passengers int `json:"passengers"`

	// CabinClass is the requested cabin (default: economy)
	CabinClass CabinClass `json:"cabinClass"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// IsAirportCode reports whether code is a 3-letter uppercase IATA code.
func IsAirportCode(code string) bool {
	return airportCodeRegex.MatchString(code)
}

// IsRoundTrip reports whether the request carries a return leg.
func (s *SearchRequest) IsRoundTrip() bool {
	return s.ReturnDate != ""
}

// Validate checks if the search request is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchRequest) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !IsAirportCode(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !IsAirportCode(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	departure, err := time.Parse(DateLayout, s.DepartureDate)
	if err != nil {
		return fmt.Errorf("%w: departureDate must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, s.DepartureDate)
	}

	if s.ReturnDate != "" {
		ret, err := time.Parse(DateLayout, s.ReturnDate)
		if err != nil {
			return fmt.Errorf("%w: returnDate must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, s.ReturnDate)
		}
		if ret.Before(departure) {
			return fmt.Errorf("%w: returnDate cannot be before departureDate", ErrInvalidRequest)
		}
	}

	if s.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidRequest)
	}
	if s.Passengers > MaxPassengers {
		return fmt.Errorf("%w: passengers cannot exceed %d", ErrInvalidRequest, MaxPassengers)
	}

	if !s.CabinClass.IsValid() {
		return fmt.Errorf("%w: cabinClass must be one of: economy, premium_economy, business, first; got %q", ErrInvalidRequest, s.CabinClass)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchRequest) SetDefaults() {
	if s.Passengers == 0 {
		s.Passengers = 1
	}
	if s.CabinClass == "" {
		s.CabinClass = CabinEconomy
	}
}
