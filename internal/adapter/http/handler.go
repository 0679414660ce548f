// Package http provides the HTTP handler layer for the flight offer API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-offer-service/internal/adapter/http/response"
	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/usecase"
)

// FlightHandler handles HTTP requests for flight and location endpoints.
type FlightHandler struct {
	offers    usecase.OfferSearchUseCase
	upcoming  usecase.UpcomingFlightsUseCase
	locations usecase.LocationSearchUseCase
	lookup    domain.OfferLookup
}

// NewFlightHandler creates a new FlightHandler with the given use cases and
// the provider used for single-offer lookups.
func NewFlightHandler(
	offers usecase.OfferSearchUseCase,
	upcoming usecase.UpcomingFlightsUseCase,
	locations usecase.LocationSearchUseCase,
	lookup domain.OfferLookup,
) *FlightHandler {
	return &FlightHandler{
		offers:    offers,
		upcoming:  upcoming,
		locations: locations,
		lookup:    lookup,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flight offers
// @Description Creates an offer request, polls until offers are priced and returns them in flat form. Falls back to sample offers when the provider fails.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Header 200 {string} X-Data-Source "live or mock"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	searchReq := ToDomainRequest(&req)
	if err := searchReq.Validate(); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.offers.Search(c.Request().Context(), searchReq)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, string(result.Source), ToSearchResponseDTO(result))
}

// UpcomingFlights handles GET /api/v1/flights/upcoming
//
// @Summary List upcoming departures
// @Description Lists tomorrow's offers departing from the given airport, sorted by departure time.
// @Tags flights
// @Produce json
// @Param location query string true "IATA airport code" example(JFK)
// @Success 200 {object} UpcomingFlightsDTO
// @Failure 400 {object} response.ErrorDetail "Invalid location"
// @Router /flights/upcoming [get]
func (h *FlightHandler) UpcomingFlights(c echo.Context) error {
	location := normalizeLocation(c.QueryParam("location"))
	if location == "" {
		return response.ValidationError(c, map[string]string{"location": "location is required"})
	}

	upcoming, err := h.upcoming.List(c.Request().Context(), location)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, string(upcoming.Source), ToUpcomingFlightsDTO(upcoming))
}

// SearchLocations handles GET /api/v1/locations/search
//
// @Summary Autocomplete airports and cities
// @Description Returns location suggestions. Queries shorter than two characters return an empty list.
// @Tags locations
// @Produce json
// @Param q query string true "Search text" example(lon)
// @Success 200 {object} LocationsResponseDTO
// @Router /locations/search [get]
func (h *FlightHandler) SearchLocations(c echo.Context) error {
	locations, err := h.locations.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToLocationsResponseDTO(locations))
}

// GetOffer handles GET /api/v1/flights/offer/:offerId
//
// @Summary Fetch a single offer
// @Description Proxies the provider's offer lookup. Provider errors are returned with their original status and body.
// @Tags flights
// @Produce json
// @Param offerId path string true "Provider offer id"
// @Success 200 {object} object "Provider offer body"
// @Failure 500 {object} response.ErrorDetail "Provider credentials not configured"
// @Router /flights/offer/{offerId} [get]
func (h *FlightHandler) GetOffer(c echo.Context) error {
	offerID := strings.TrimSpace(c.Param("offerId"))
	if offerID == "" {
		return response.ValidationError(c, map[string]string{"offerId": "offerId is required"})
	}

	body, err := h.lookup.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) {
			return response.Raw(c, upstreamErr.StatusCode, upstreamErr.Body)
		}
		return h.handleError(c, err)
	}

	return response.Raw(c, http.StatusOK, body)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrMissingCredentials):
		return response.MissingCredentials(c)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrNoOffers):
		return response.ServiceUnavailable(c)
	default:
		return response.InternalServerError(c)
	}
}
