package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/flight-offer-service/internal/adapter/http/response"
	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/usecase"
)

// stubOfferSearch is a stub implementation of OfferSearchUseCase for testing.
type stubOfferSearch struct {
	searchFunc func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
	lastReq    domain.SearchRequest
	calls      int
}

func (s *stubOfferSearch) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	s.calls++
	s.lastReq = req
	if s.searchFunc != nil {
		return s.searchFunc(ctx, req)
	}
	return domain.NewLiveResult(nil, domain.SearchMetadata{}), nil
}

type stubUpcoming struct {
	listFunc func(ctx context.Context, location string) (*usecase.UpcomingFlights, error)
	lastLoc  string
}

func (s *stubUpcoming) List(ctx context.Context, location string) (*usecase.UpcomingFlights, error) {
	s.lastLoc = location
	return s.listFunc(ctx, location)
}

type stubLocations struct {
	results []domain.LocationSuggestion
	err     error
	queries []string
}

func (s *stubLocations) Search(ctx context.Context, query string) ([]domain.LocationSuggestion, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

type handlerDeps struct {
	offers    *stubOfferSearch
	upcoming  *stubUpcoming
	locations *stubLocations
	lookup    *domain.MockOfferLookup
}

// setupTestHandler creates a test Echo instance with all routes registered.
func setupTestHandler(t *testing.T) (*echo.Echo, *handlerDeps) {
	t.Helper()
	deps := &handlerDeps{
		offers:    &stubOfferSearch{},
		upcoming:  &stubUpcoming{},
		locations: &stubLocations{},
		lookup:    domain.NewMockOfferLookup(gomock.NewController(t)),
	}
	e := echo.New()
	h := NewFlightHandler(deps.offers, deps.upcoming, deps.locations, deps.lookup)
	RegisterRoutes(e, h)
	return e, deps
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	default:
		reqBody, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sampleOffer(id string) domain.FlightOffer {
	return domain.FlightOffer{
		ID:           id,
		Airline:      "Delta Air Lines",
		FlightNumber: "DL423",
		Departure:    domain.FlightPoint{Time: "08:00", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "11:15", Airport: "LAX", City: "Los Angeles", Date: "2025-07-15"},
		Duration:     "6h 15m",
		Price:        349.5,
		Currency:     "USD",
		Amenities:    []string{"wifi"},
		Baggage:      "1 x 23kg checked",
		CabinClass:   "Economy",
	}
}

func decodeErrorDetail(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

// =====================================================
// Search Tests
// =====================================================

func TestSearchFlights_LiveResult(t *testing.T) {
	e, deps := setupTestHandler(t)
	deps.offers.searchFunc = func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
		return domain.NewLiveResult(
			[]domain.FlightOffer{sampleOffer("off_1"), sampleOffer("off_2")},
			domain.SearchMetadata{OfferRequestID: "orq_1", PollAttempts: 2, SearchTimeMs: 40},
		), nil
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", map[string]interface{}{
		"origin":        "jfk",
		"destination":   "lax",
		"departureDate": "2025-07-15",
		"returnDate":    "2025-07-20",
		"passengers":    2,
		"cabinClass":    "business",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "live", rec.Header().Get(response.DataSourceHeader))

	var body SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "live", body.Source)
	assert.Empty(t, body.FallbackReason)
	assert.Len(t, body.Flights, 2)
	assert.Equal(t, "off_1", body.Flights[0].ID)
	assert.Equal(t, "orq_1", body.Metadata.OfferRequestID)
	assert.Equal(t, 2, body.Metadata.PollAttempts)
	assert.Equal(t, 2, body.Metadata.TotalResults)

	assert.Equal(t, domain.SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-07-15",
		ReturnDate:    "2025-07-20",
		Passengers:    2,
		CabinClass:    domain.CabinBusiness,
	}, deps.offers.lastReq)
}

func TestSearchFlights_FallbackResultIsTagged(t *testing.T) {
	e, deps := setupTestHandler(t)
	deps.offers.searchFunc = func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
		return domain.NewFallbackResult([]domain.FlightOffer{sampleOffer("1")}, domain.ReasonUpstreamError, domain.SearchMetadata{}), nil
	}

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", SearchFlightsRequest{
		Origin: "JFK", Destination: "LAX", DepartureDate: "2025-07-15",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mock", rec.Header().Get(response.DataSourceHeader))

	var body SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "mock", body.Source)
	assert.Equal(t, "upstream_error", body.FallbackReason)
	assert.Equal(t, 1, deps.offers.lastReq.Passengers)
	assert.Equal(t, domain.CabinEconomy, deps.offers.lastReq.CabinClass)
}

func TestSearchFlights_EmptyLiveResultEncodesEmptyArray(t *testing.T) {
	e, _ := setupTestHandler(t)

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", SearchFlightsRequest{
		Origin: "JFK", Destination: "LAX", DepartureDate: "2025-07-15",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"flights":[]`)
}

func TestSearchFlights_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        interface{}
		wantCode    string
		wantDetails map[string]string
	}{
		{
			name:        "missing origin",
			body:        map[string]interface{}{"destination": "LAX", "departureDate": "2025-07-15"},
			wantCode:    response.CodeValidationError,
			wantDetails: map[string]string{"origin": "origin is required"},
		},
		{
			name:     "all params missing",
			body:     map[string]interface{}{},
			wantCode: response.CodeValidationError,
			wantDetails: map[string]string{
				"origin":        "origin is required",
				"destination":   "destination is required",
				"departureDate": "departureDate is required",
			},
		},
		{
			name:        "bad cabin class",
			body:        map[string]interface{}{"origin": "JFK", "destination": "LAX", "departureDate": "2025-07-15", "cabinClass": "steerage"},
			wantCode:    response.CodeValidationError,
			wantDetails: map[string]string{"cabinClass": "cabinClass must be one of: economy, premium_economy, business, first"},
		},
		{
			name:     "malformed json",
			body:     `{"origin": "JFK",`,
			wantCode: response.CodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, deps := setupTestHandler(t)

			rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			detail := decodeErrorDetail(t, rec)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.NotEmpty(t, detail.Error)
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, detail.Details)
			}
			assert.Zero(t, deps.offers.calls, "use case must not run for invalid input")
		})
	}
}

func TestSearchFlights_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing credentials", fmt.Errorf("create offer request: %w", domain.ErrMissingCredentials), http.StatusInternalServerError, response.CodeConfigurationError},
		{"upstream error", domain.NewUpstreamError("create offer request", 422, nil), http.StatusServiceUnavailable, response.CodeServiceUnavailable},
		{"no offers", domain.ErrNoOffers, http.StatusServiceUnavailable, response.CodeServiceUnavailable},
		{"deadline exceeded", fmt.Errorf("list offers: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, response.CodeTimeout},
		{"cancelled", context.Canceled, http.StatusGatewayTimeout, response.CodeTimeout},
		{"invalid request", fmt.Errorf("%w: bad", domain.ErrInvalidRequest), http.StatusBadRequest, response.CodeValidationError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, response.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, deps := setupTestHandler(t)
			deps.offers.searchFunc = func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
				return nil, tt.err
			}

			rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", SearchFlightsRequest{
				Origin: "JFK", Destination: "LAX", DepartureDate: "2025-07-15",
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorDetail(t, rec).Code)
		})
	}
}

// =====================================================
// Upcoming Tests
// =====================================================

func TestUpcomingFlights_Success(t *testing.T) {
	e, deps := setupTestHandler(t)
	deps.upcoming.listFunc = func(ctx context.Context, location string) (*usecase.UpcomingFlights, error) {
		return &usecase.UpcomingFlights{
			Location: location,
			Flights:  []domain.FlightOffer{sampleOffer("off_1")},
			Count:    1,
			Source:   domain.SourceLive,
		}, nil
	}

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights/upcoming?location=jfk", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "JFK", deps.upcoming.lastLoc)
	assert.Equal(t, "live", rec.Header().Get(response.DataSourceHeader))

	var body UpcomingFlightsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "JFK", body.Location)
	assert.Equal(t, 1, body.Count)
	assert.Len(t, body.Flights, 1)
}

func TestUpcomingFlights_MissingLocation(t *testing.T) {
	e, _ := setupTestHandler(t)

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights/upcoming", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"location": "location is required"}, decodeErrorDetail(t, rec).Details)
}

func TestUpcomingFlights_InvalidLocation(t *testing.T) {
	e, deps := setupTestHandler(t)
	deps.upcoming.listFunc = func(ctx context.Context, location string) (*usecase.UpcomingFlights, error) {
		return nil, fmt.Errorf("%w: location must be a valid 3-letter IATA code", domain.ErrInvalidRequest)
	}

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights/upcoming?location=NEWYORK", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.CodeValidationError, decodeErrorDetail(t, rec).Code)
}

// =====================================================
// Location Tests
// =====================================================

func TestSearchLocations(t *testing.T) {
	e, deps := setupTestHandler(t)
	deps.locations.results = []domain.LocationSuggestion{
		{ID: "arp_lhr_gb", Type: domain.LocationAirport, IATACode: "LHR", Name: "Heathrow Airport", CityName: "London", CountryCode: "GB"},
	}

	rec := makeRequest(e, http.MethodGet, "/api/v1/locations/search?q=lon", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"lon"}, deps.locations.queries)

	var body LocationsResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Locations, 1)
	assert.Equal(t, "LHR", body.Locations[0].IATACode)
	assert.Equal(t, "airport", body.Locations[0].Type)
}

func TestSearchLocations_EmptyListIsArray(t *testing.T) {
	e, deps := setupTestHandler(t)
	deps.locations.results = []domain.LocationSuggestion{}

	rec := makeRequest(e, http.MethodGet, "/api/v1/locations/search?q=a", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"locations":[]}`, rec.Body.String())
}

func TestSearchLocations_Cancelled(t *testing.T) {
	e, deps := setupTestHandler(t)
	deps.locations.err = context.Canceled

	rec := makeRequest(e, http.MethodGet, "/api/v1/locations/search?q=lon", nil)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

// =====================================================
// Offer Lookup Tests
// =====================================================

func TestGetOffer(t *testing.T) {
	upstreamBody := []byte(`{"errors":[{"code":"not_found","message":"Offer not found"}]}`)

	tests := []struct {
		name       string
		body       []byte
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success is proxied verbatim",
			body:       []byte(`{"data":{"id":"off_123","total_amount":"349.50"}}`),
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"id":"off_123","total_amount":"349.50"}}`,
		},
		{
			name:       "upstream error keeps status and body",
			err:        fmt.Errorf("get offer: %w", domain.NewUpstreamError("get offer", http.StatusNotFound, upstreamBody)),
			wantStatus: http.StatusNotFound,
			wantBody:   string(upstreamBody),
		},
		{
			name:       "missing credentials",
			err:        domain.ErrMissingCredentials,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "oversized upstream body",
			err:        fmt.Errorf("get offer: %w", fmt.Errorf("%w: response body exceeds 8388608 bytes", domain.ErrUpstream)),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "timeout",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, deps := setupTestHandler(t)
			deps.lookup.EXPECT().GetOffer(gomock.Any(), "off_123").Return(tt.body, tt.err)

			rec := makeRequest(e, http.MethodGet, "/api/v1/flights/offer/off_123", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGetOffer_MissingCredentialsBody(t *testing.T) {
	e, deps := setupTestHandler(t)
	deps.lookup.EXPECT().GetOffer(gomock.Any(), "off_1").Return(nil, domain.ErrMissingCredentials)

	rec := makeRequest(e, http.MethodGet, "/api/v1/flights/offer/off_1", nil)

	detail := decodeErrorDetail(t, rec)
	assert.Equal(t, response.CodeConfigurationError, detail.Code)
	assert.Equal(t, response.MsgMissingCredentials, detail.Error)
}

// =====================================================
// Health Tests
// =====================================================

func TestHealth(t *testing.T) {
	e, _ := setupTestHandler(t)

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
