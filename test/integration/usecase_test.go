package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-offer-service/internal/adapter/provider/duffel"
	"github.com/flight-search/flight-offer-service/internal/adapter/provider/fallback"
	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/usecase"
	"github.com/flight-search/flight-offer-service/test/mock"
	"github.com/flight-search/flight-offer-service/test/testutil"
)

func newClient(t *testing.T, upstream *mock.DuffelServer) *duffel.Client {
	t.Helper()
	return duffel.NewClient(duffel.Config{
		APIKey:     testAPIKey,
		BaseURL:    upstream.URL,
		APIVersion: duffel.DefaultAPIVersion,
		Timeout:    time.Second,
	}, upstream.Client(), nil)
}

func defaultDomainRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-07-15",
		Passengers:    1,
		CabinClass:    domain.CabinEconomy,
	}
}

// TestPoller_StopsOnFirstNonEmptyAttempt polls until the third list call
// returns offers and issues no further calls.
func TestPoller_StopsOnFirstNonEmptyAttempt(t *testing.T) {
	upstream := mock.NewDuffelServer()
	defer upstream.Close()
	upstream.
		Respond(mock.RouteListOffers, http.StatusOK, testutil.LoadDuffelFixture(t, "offers.json")).
		OffersReadyAfter(2)

	poller := usecase.NewOfferPoller(newClient(t, upstream), &usecase.PollerConfig{
		MaxAttempts: 10,
		Interval:    TestPollInterval,
	}, nil)

	result, err := poller.Poll(context.Background(), "orq_stub")

	require.NoError(t, err)
	assert.Len(t, result.Offers, 2)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, 3, upstream.Calls(mock.RouteListOffers))
}

// TestPoller_BoundedAttempts never exceeds the attempt budget.
func TestPoller_BoundedAttempts(t *testing.T) {
	upstream := mock.NewDuffelServer()
	defer upstream.Close()

	poller := usecase.NewOfferPoller(newClient(t, upstream), &usecase.PollerConfig{
		MaxAttempts: usecase.DefaultPollMaxAttempts,
		Interval:    TestPollInterval,
	}, nil)

	result, err := poller.Poll(context.Background(), "orq_stub")

	require.NoError(t, err)
	assert.Empty(t, result.Offers)
	assert.Equal(t, 10, result.Attempts)
	assert.Equal(t, 10, upstream.Calls(mock.RouteListOffers))
}

// TestOfferSearch_CancelledCallerStopsPolling stops the poll loop once the
// caller goes away and does not substitute fallback offers.
func TestOfferSearch_CancelledCallerStopsPolling(t *testing.T) {
	upstream := mock.NewDuffelServer()
	defer upstream.Close()

	search := usecase.NewOfferSearchUseCase(newClient(t, upstream), fallback.Offers, &usecase.OfferSearchConfig{
		Poll: usecase.PollerConfig{MaxAttempts: 10, Interval: 50 * time.Millisecond},
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	result, err := search.Search(ctx, defaultDomainRequest())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, upstream.Calls(mock.RouteListOffers), 10)
}

// TestOfferSearch_SearchTimeoutFallsBack answers with fallback offers when
// the search budget runs out before offers are priced.
func TestOfferSearch_SearchTimeoutFallsBack(t *testing.T) {
	upstream := mock.NewDuffelServer()
	defer upstream.Close()

	search := usecase.NewOfferSearchUseCase(newClient(t, upstream), fallback.Offers, &usecase.OfferSearchConfig{
		SearchTimeout: 80 * time.Millisecond,
		Poll:          usecase.PollerConfig{MaxAttempts: 10, Interval: 50 * time.Millisecond},
	}, nil)

	result, err := search.Search(context.Background(), defaultDomainRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.SourceMock, result.Source)
	assert.Equal(t, domain.ReasonTimeout, result.FallbackReason)
	assert.Len(t, result.Flights, 10)
}
