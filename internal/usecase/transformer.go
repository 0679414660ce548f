package usecase

import (
	"fmt"
	"math"
	"strconv"

	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/timeutil"
)

// Placeholder values for fields the provider's minimal offer payload lacks.
var (
	placeholderAmenities = []string{"wifi", "meals", "entertainment"}
	placeholderBaggage   = "1 x 23kg checked"
)

// OfferTransformer maps provider offers into the flat FlightOffer shape.
type OfferTransformer struct {
	log *logger.Logger
}

// NewOfferTransformer creates a transformer that logs skipped offers to log.
func NewOfferTransformer(log *logger.Logger) *OfferTransformer {
	return &OfferTransformer{log: logger.OrNop(log)}
}

// Transform converts raw offers in order, dropping any offer that cannot be
// mapped. cabin only feeds the display label.
func (t *OfferTransformer) Transform(raw []domain.RawOffer, cabin domain.CabinClass) []domain.FlightOffer {
	result := make([]domain.FlightOffer, 0, len(raw))

	for i := range raw {
		offer, err := TransformOffer(raw[i], cabin)
		if err != nil {
			t.log.Warn().
				Err(err).
				Str("offer_id", raw[i].ID).
				Int("index", i).
				Msg("Skipping malformed offer")
			continue
		}
		result = append(result, offer)
	}

	return result
}

// TransformOffer maps one raw offer using its first slice. It returns an
// error wrapping domain.ErrMalformedOffer when required fields are missing.
func TransformOffer(raw domain.RawOffer, cabin domain.CabinClass) (domain.FlightOffer, error) {
	if len(raw.Slices) == 0 {
		return domain.FlightOffer{}, fmt.Errorf("%w: offer %q has no slices", domain.ErrMalformedOffer, raw.ID)
	}
	slice := raw.Slices[0]
	if len(slice.Segments) == 0 {
		return domain.FlightOffer{}, fmt.Errorf("%w: offer %q has no segments", domain.ErrMalformedOffer, raw.ID)
	}

	first := slice.Segments[0]
	last := slice.Segments[len(slice.Segments)-1]

	departAt, err := timeutil.ParseTimestamp(first.DepartingAt)
	if err != nil {
		return domain.FlightOffer{}, fmt.Errorf("%w: offer %q departure: %v", domain.ErrMalformedOffer, raw.ID, err)
	}
	arriveAt, err := timeutil.ParseTimestamp(last.ArrivingAt)
	if err != nil {
		return domain.FlightOffer{}, fmt.Errorf("%w: offer %q arrival: %v", domain.ErrMalformedOffer, raw.ID, err)
	}

	stops := len(slice.Segments) - 1
	connections := make([]string, 0, stops)
	for _, seg := range slice.Segments[:stops] {
		connections = append(connections, seg.Destination.IATACode)
	}

	airline := first.MarketingCarrier.Name
	if airline == "" {
		airline = raw.Owner.Name
	}

	price, err := strconv.ParseFloat(raw.TotalAmount, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		price = 0
	}

	return domain.FlightOffer{
		ID:           raw.ID,
		Airline:      airline,
		FlightNumber: first.MarketingCarrier.IATACode + first.MarketingCarrierFlightNumber,
		Departure: domain.FlightPoint{
			Time:    timeutil.FormatTime(departAt),
			Airport: first.Origin.IATACode,
			City:    cityOf(first.Origin),
			Date:    timeutil.FormatDate(departAt),
		},
		Arrival: domain.FlightPoint{
			Time:    timeutil.FormatTime(arriveAt),
			Airport: last.Destination.IATACode,
			City:    cityOf(last.Destination),
			Date:    timeutil.FormatDate(arriveAt),
		},
		Duration:    domain.FormatDuration(sliceMinutes(slice)),
		Stops:       stops,
		StopDetails: domain.FormatStopDetails(connections),
		Price:       price,
		Currency:    raw.TotalCurrency,
		Amenities:   append([]string(nil), placeholderAmenities...),
		Baggage:     placeholderBaggage,
		CabinClass:  cabin.Label(),
	}, nil
}

// sliceMinutes prefers the slice duration and falls back to the sum of
// segment durations. Wall-clock timestamps are local to each airport, so
// they are never subtracted.
func sliceMinutes(slice domain.RawSlice) int {
	if minutes, err := timeutil.ParseISODuration(slice.Duration); err == nil {
		return minutes
	}
	total := 0
	for _, seg := range slice.Segments {
		if minutes, err := timeutil.ParseISODuration(seg.Duration); err == nil {
			total += minutes
		}
	}
	return total
}

func cityOf(place domain.RawPlace) string {
	if place.CityName != "" {
		return place.CityName
	}
	return place.Name
}
