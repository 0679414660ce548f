package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testHandle = domain.OfferRequestHandle("orq_test")

// newTestPoller creates a poller with a short interval so tests stay fast.
func newTestPoller(provider domain.OfferProvider, attempts int) *OfferPoller {
	return NewOfferPoller(provider, &PollerConfig{MaxAttempts: attempts, Interval: 5 * time.Millisecond}, nil)
}

func TestNewOfferPoller_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		name         string
		config       *PollerConfig
		wantAttempts int
		wantInterval time.Duration
	}{
		{"nil config", nil, DefaultPollMaxAttempts, DefaultPollInterval},
		{"zero values", &PollerConfig{}, 10, 2 * time.Second},
		{"custom", &PollerConfig{MaxAttempts: 3, Interval: time.Second}, 3, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewOfferPoller(domain.NewMockOfferProvider(ctrl), tt.config, nil)
			assert.Equal(t, tt.wantAttempts, p.maxAttempts)
			assert.Equal(t, tt.wantInterval, p.interval)
		})
	}
}

func TestOfferPoller_ReturnsImmediatelyWhenOffersReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockOfferProvider(ctrl)
	provider.EXPECT().ListOffers(gomock.Any(), testHandle).
		Return([]domain.RawOffer{{ID: "off_1"}, {ID: "off_2"}}, nil).
		Times(1)

	result, err := newTestPoller(provider, 10).Poll(context.Background(), testHandle)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Attempts)
	require.Len(t, result.Offers, 2)
	assert.Equal(t, "off_1", result.Offers[0].ID, "provider order is preserved")
	assert.Equal(t, "off_2", result.Offers[1].ID)
}

func TestOfferPoller_BoundedAttemptsWhenNeverReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockOfferProvider(ctrl)
	provider.EXPECT().ListOffers(gomock.Any(), testHandle).
		Return([]domain.RawOffer{}, nil).
		Times(10)

	interval := 10 * time.Millisecond
	poller := NewOfferPoller(provider, &PollerConfig{MaxAttempts: 10, Interval: interval}, nil)

	start := time.Now()
	result, err := poller.Poll(context.Background(), testHandle)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, 10, result.Attempts)
	assert.NotNil(t, result.Offers)
	assert.Empty(t, result.Offers)
	// Nine waits between ten attempts, plus overhead
	assert.GreaterOrEqual(t, elapsed, 9*interval)
	assert.Less(t, elapsed, 10*interval+500*time.Millisecond)
}

func TestOfferPoller_StopsOnThirdAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockOfferProvider(ctrl)

	calls := 0
	provider.EXPECT().ListOffers(gomock.Any(), testHandle).
		DoAndReturn(func(ctx context.Context, h domain.OfferRequestHandle) ([]domain.RawOffer, error) {
			calls++
			if calls < 3 {
				return nil, nil
			}
			return []domain.RawOffer{{ID: "off_ready"}}, nil
		}).
		Times(3)

	result, err := newTestPoller(provider, 10).Poll(context.Background(), testHandle)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, result.Attempts)
	assert.Len(t, result.Offers, 1)
}

func TestOfferPoller_ErrorsBeforeFinalAttemptAreRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockOfferProvider(ctrl)

	gomock.InOrder(
		provider.EXPECT().ListOffers(gomock.Any(), testHandle).Return(nil, errors.New("connection reset")),
		provider.EXPECT().ListOffers(gomock.Any(), testHandle).Return(nil, domain.NewUpstreamError("list offers", 502, nil)),
		provider.EXPECT().ListOffers(gomock.Any(), testHandle).Return([]domain.RawOffer{{ID: "off_1"}}, nil),
	)

	result, err := newTestPoller(provider, 5).Poll(context.Background(), testHandle)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempts)
	assert.Len(t, result.Offers, 1)
}

func TestOfferPoller_FinalAttemptErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockOfferProvider(ctrl)

	upstreamErr := domain.NewUpstreamError("list offers", 500, []byte("boom"))
	gomock.InOrder(
		provider.EXPECT().ListOffers(gomock.Any(), testHandle).Return(nil, nil).Times(2),
		provider.EXPECT().ListOffers(gomock.Any(), testHandle).Return(nil, upstreamErr),
	)

	result, err := newTestPoller(provider, 3).Poll(context.Background(), testHandle)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
	var got *domain.UpstreamError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 500, got.StatusCode)
	assert.Equal(t, 3, result.Attempts)
	assert.Empty(t, result.Offers)
}

func TestOfferPoller_EarlierErrorThenEmptyFinalAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockOfferProvider(ctrl)

	gomock.InOrder(
		provider.EXPECT().ListOffers(gomock.Any(), testHandle).Return(nil, errors.New("timeout")),
		provider.EXPECT().ListOffers(gomock.Any(), testHandle).Return([]domain.RawOffer{}, nil),
	)

	result, err := newTestPoller(provider, 2).Poll(context.Background(), testHandle)

	require.NoError(t, err, "only an error on the final attempt propagates")
	assert.Equal(t, 2, result.Attempts)
	assert.Empty(t, result.Offers)
}

func TestOfferPoller_ContextCancellationStopsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := domain.NewMockOfferProvider(ctrl)
	provider.EXPECT().ListOffers(gomock.Any(), testHandle).Return(nil, nil).MinTimes(1).MaxTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	poller := NewOfferPoller(provider, &PollerConfig{MaxAttempts: 10, Interval: 200 * time.Millisecond}, nil)

	start := time.Now()
	result, err := poller.Poll(ctx, testHandle)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, result.Attempts, 10)
	assert.Less(t, time.Since(start), time.Second)
}
