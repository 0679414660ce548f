// Package integration provides helpers and integration tests for the flight offer service.
// Integration tests run the real HTTP handlers, use cases and Duffel client against
// a stub Duffel server, so every layer except the network peer is exercised.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-search/flight-offer-service/internal/adapter/http"
	"github.com/flight-search/flight-offer-service/internal/adapter/http/middleware"
	"github.com/flight-search/flight-offer-service/internal/adapter/provider/duffel"
	"github.com/flight-search/flight-offer-service/internal/adapter/provider/fallback"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/cache"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-offer-service/internal/usecase"
	"github.com/flight-search/flight-offer-service/test/mock"
	"github.com/flight-search/flight-offer-service/test/testutil"
)

// TestPollInterval keeps polling fast in tests; production uses 2s.
const TestPollInterval = 5 * time.Millisecond

// Options tweak the stack built by NewTestServer.
type Options struct {
	APIKey          string
	PollMaxAttempts int
	SearchTimeout   time.Duration
	DisableFallback bool
	Clock           timeutil.Clock
}

// TestServer wraps an Echo instance wired to a stub Duffel upstream.
type TestServer struct {
	Echo     *echo.Echo
	Upstream *mock.DuffelServer
	Cache    *cache.MemoryCache
}

// NewTestServer builds the full stack against a fresh stub upstream.
// The stub is closed when the test ends.
func NewTestServer(t *testing.T, opts Options) *TestServer {
	t.Helper()

	upstream := mock.NewDuffelServer()
	t.Cleanup(upstream.Close)

	if opts.PollMaxAttempts == 0 {
		opts.PollMaxAttempts = usecase.DefaultPollMaxAttempts
	}
	if opts.Clock == nil {
		opts.Clock = timeutil.NewMockClock(testutil.MustParseTime(t, "2025-07-14T09:00:00Z"))
	}

	log := logger.Nop()
	client := duffel.NewClient(duffel.Config{
		APIKey:     opts.APIKey,
		BaseURL:    upstream.URL,
		APIVersion: duffel.DefaultAPIVersion,
		Timeout:    time.Second,
	}, upstream.Client(), log)

	offerSearch := usecase.NewOfferSearchUseCase(client, fallback.Offers, &usecase.OfferSearchConfig{
		SearchTimeout:   opts.SearchTimeout,
		DisableFallback: opts.DisableFallback,
		Poll: usecase.PollerConfig{
			MaxAttempts: opts.PollMaxAttempts,
			Interval:    TestPollInterval,
		},
	}, log)

	memCache := cache.NewMemoryCache(opts.Clock)
	locations := usecase.NewLocationSearchUseCase(client, memCache, fallback.SearchAirports, nil, log)
	upcoming := usecase.NewUpcomingFlightsUseCase(offerSearch, nil, opts.Clock)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log.Logger)

	handler := httpAdapter.NewFlightHandler(offerSearch, upcoming, locations, client)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Upstream: upstream,
		Cache:    memCache,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(method, path string, body interface{}) Response {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	httpReq := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	if body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search posts a search request.
func (ts *TestServer) Search(body interface{}) Response {
	return ts.Do(http.MethodPost, "/api/v1/flights/search", body)
}

// ParseSearchResponse parses the response body as a search response.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DefaultSearchRequest returns the JFK to LAX one-way search used across scenarios.
func DefaultSearchRequest() httpAdapter.SearchFlightsRequest {
	return httpAdapter.SearchFlightsRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-07-15",
		Passengers:    1,
		CabinClass:    "economy",
	}
}
