package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/logger"
)

// DefaultSearchTimeout bounds a whole live search (initiate, poll, transform).
const DefaultSearchTimeout = 30 * time.Second

// OfferSearchUseCase defines the interface for flight offer searches.
type OfferSearchUseCase interface {
	// Search runs the live offer workflow and substitutes fallback offers
	// when it fails. The result is tagged with its source.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
}

// OfferSearchConfig contains configuration options for the offer search.
type OfferSearchConfig struct {
	// SearchTimeout bounds the live path (default: 30s)
	SearchTimeout time.Duration

	// DisableFallback returns live errors and empty results as-is
	DisableFallback bool

	// Poll configures the polling loop
	Poll PollerConfig
}

// offerSearchUseCase is the error boundary of the offer workflow.
type offerSearchUseCase struct {
	provider       domain.OfferProvider
	poller         *OfferPoller
	transformer    *OfferTransformer
	fallbackOffers func() []domain.FlightOffer
	searchTimeout  time.Duration
	log            *logger.Logger
}

// NewOfferSearchUseCase wires the initiator, poller and transformer around
// provider. fallbackOffers supplies the mock dataset; when nil (or when the
// config disables it) failures are returned to the caller.
func NewOfferSearchUseCase(
	provider domain.OfferProvider,
	fallbackOffers func() []domain.FlightOffer,
	config *OfferSearchConfig,
	log *logger.Logger,
) OfferSearchUseCase {
	cfg := OfferSearchConfig{SearchTimeout: DefaultSearchTimeout}
	if config != nil {
		if config.SearchTimeout > 0 {
			cfg.SearchTimeout = config.SearchTimeout
		}
		cfg.DisableFallback = config.DisableFallback
		cfg.Poll = config.Poll
	}
	if cfg.DisableFallback {
		fallbackOffers = nil
	}

	log = logger.OrNop(log).WithProvider(provider.Name())

	return &offerSearchUseCase{
		provider:       provider,
		poller:         NewOfferPoller(provider, &cfg.Poll, log),
		transformer:    NewOfferTransformer(log),
		fallbackOffers: fallbackOffers,
		searchTimeout:  cfg.SearchTimeout,
		log:            log,
	}
}

// Search implements OfferSearchUseCase.Search.
func (uc *offerSearchUseCase) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	startTime := time.Now()
	metadata := domain.SearchMetadata{}

	// The timeout only bounds the live path; the caller's ctx is kept to
	// tell an abandoned request apart from a slow provider.
	searchCtx, cancel := context.WithTimeout(ctx, uc.searchTimeout)
	defer cancel()

	handle, err := uc.provider.CreateOfferRequest(searchCtx, req)
	if err != nil {
		return uc.fallback(ctx, err, metadata, startTime)
	}
	metadata.OfferRequestID = handle.String()

	poll, err := uc.poller.Poll(searchCtx, handle)
	metadata.PollAttempts = poll.Attempts
	if err != nil {
		return uc.fallback(ctx, err, metadata, startTime)
	}

	flights := uc.transformer.Transform(poll.Offers, req.CabinClass)
	if len(flights) == 0 && uc.fallbackOffers != nil {
		return uc.fallback(ctx, domain.ErrNoOffers, metadata, startTime)
	}

	metadata.SearchTimeMs = time.Since(startTime).Milliseconds()
	result := domain.NewLiveResult(flights, metadata)

	uc.log.Info().
		Str("offer_request_id", metadata.OfferRequestID).
		Int("attempts", metadata.PollAttempts).
		Int("offers", result.Metadata.TotalResults).
		Int64("duration_ms", metadata.SearchTimeMs).
		Msg("Live offer search completed")

	return result, nil
}

// fallback converts a live-path failure into a mock result, unless the
// caller itself went away or fallback is disabled.
func (uc *offerSearchUseCase) fallback(ctx context.Context, cause error, metadata domain.SearchMetadata, startTime time.Time) (*domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if uc.fallbackOffers == nil {
		return nil, cause
	}

	reason := FallbackReasonFor(cause)
	metadata.SearchTimeMs = time.Since(startTime).Milliseconds()

	uc.log.Warn().
		Err(cause).
		Str("reason", string(reason)).
		Str("offer_request_id", metadata.OfferRequestID).
		Int("attempts", metadata.PollAttempts).
		Msg("Live offer search failed, serving fallback offers")

	return domain.NewFallbackResult(uc.fallbackOffers(), reason, metadata), nil
}

// FallbackReasonFor classifies a live-path error.
func FallbackReasonFor(err error) domain.FallbackReason {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return domain.ReasonMissingCredentials
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ReasonTimeout
	case errors.Is(err, domain.ErrNoOffers):
		return domain.ReasonNoOffers
	default:
		return domain.ReasonUpstreamError
	}
}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
