package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/timeutil"
)

// DefaultUpcomingDestinations are tried in order for the upcoming listing.
var DefaultUpcomingDestinations = []string{"LHR", "DXB", "CDG", "JFK"}

// UpcomingFlights is the listing of departures from one location.
type UpcomingFlights struct {
	Location string                `json:"location"`
	Flights  []domain.FlightOffer  `json:"flights"`
	Count    int                   `json:"count"`
	Source   domain.Source         `json:"source"`
	Reason   domain.FallbackReason `json:"fallbackReason,omitempty"`
}

// UpcomingFlightsUseCase lists near-term departures from a location.
type UpcomingFlightsUseCase interface {
	List(ctx context.Context, location string) (*UpcomingFlights, error)
}

type upcomingFlightsUseCase struct {
	search       OfferSearchUseCase
	destinations []string
	clock        timeutil.Clock
}

// NewUpcomingFlightsUseCase creates the listing on top of an offer search.
// Empty destinations use DefaultUpcomingDestinations; a nil clock uses system time.
func NewUpcomingFlightsUseCase(search OfferSearchUseCase, destinations []string, clock timeutil.Clock) UpcomingFlightsUseCase {
	if len(destinations) == 0 {
		destinations = DefaultUpcomingDestinations
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &upcomingFlightsUseCase{
		search:       search,
		destinations: destinations,
		clock:        clock,
	}
}

// List searches tomorrow's flights from location to the first configured
// destination other than location itself, sorted by departure.
func (uc *upcomingFlightsUseCase) List(ctx context.Context, location string) (*UpcomingFlights, error) {
	if !domain.IsAirportCode(location) {
		return nil, fmt.Errorf("%w: location must be a valid 3-letter IATA code, got %q", domain.ErrInvalidRequest, location)
	}

	destination := ""
	for _, d := range uc.destinations {
		if d != location {
			destination = d
			break
		}
	}
	if destination == "" {
		return nil, fmt.Errorf("%w: no destination configured for %s", domain.ErrInvalidRequest, location)
	}

	req := domain.SearchRequest{
		Origin:        location,
		Destination:   destination,
		DepartureDate: timeutil.DaysFrom(uc.clock, 1),
	}
	req.SetDefaults()

	result, err := uc.search.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	flights := make([]domain.FlightOffer, len(result.Flights))
	copy(flights, result.Flights)
	sort.SliceStable(flights, func(i, j int) bool {
		a, b := flights[i].Departure, flights[j].Departure
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})

	return &UpcomingFlights{
		Location: location,
		Flights:  flights,
		Count:    len(flights),
		Source:   result.Source,
		Reason:   result.FallbackReason,
	}, nil
}

var _ UpcomingFlightsUseCase = (*upcomingFlightsUseCase)(nil)
