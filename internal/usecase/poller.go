package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/retry"
)

// Default polling values.
const (
	DefaultPollMaxAttempts = 10
	DefaultPollInterval    = 2 * time.Second
)

// errOffersNotReady marks an attempt that succeeded but listed no offers yet.
var errOffersNotReady = errors.New("offers not ready")

// PollerConfig controls the offer polling loop.
type PollerConfig struct {
	MaxAttempts int
	Interval    time.Duration
}

// PollResult is the outcome of a polling loop.
type PollResult struct {
	// Offers holds the raw offers in provider order (empty if none materialized)
	Offers []domain.RawOffer

	// Attempts is the number of ListOffers calls issued
	Attempts int
}

// OfferPoller queries the provider for offers tied to an offer request until
// some appear or the attempt budget runs out.
type OfferPoller struct {
	provider    domain.OfferProvider
	maxAttempts int
	interval    time.Duration
	log         *logger.Logger
}

// NewOfferPoller creates a poller. Zero config values fall back to the defaults.
func NewOfferPoller(provider domain.OfferProvider, config *PollerConfig, log *logger.Logger) *OfferPoller {
	p := &OfferPoller{
		provider:    provider,
		maxAttempts: DefaultPollMaxAttempts,
		interval:    DefaultPollInterval,
		log:         logger.OrNop(log),
	}
	if config != nil {
		if config.MaxAttempts > 0 {
			p.maxAttempts = config.MaxAttempts
		}
		if config.Interval > 0 {
			p.interval = config.Interval
		}
	}
	return p
}

// Poll lists offers for handle at a fixed interval.
//
// It stops at the first non-empty list. An exhausted budget yields an empty
// list and a nil error. A failed attempt is logged and retried, except on the
// final attempt where the error is returned. Cancelling ctx stops the loop.
func (p *OfferPoller) Poll(ctx context.Context, handle domain.OfferRequestHandle) (PollResult, error) {
	log := p.log.WithOfferRequest(handle.String())
	attempts := 0

	cfg := retry.Fixed(p.maxAttempts, p.interval).WithOnRetry(func(attempt int, err error) {
		if errors.Is(err, errOffersNotReady) {
			log.Debug().Int("attempt", attempt).Msg("No offers yet, waiting")
			return
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("List offers attempt failed, retrying")
	})

	offers, err := retry.DoWithResult(ctx, func() ([]domain.RawOffer, error) {
		attempts++
		offers, err := p.provider.ListOffers(ctx, handle)
		if err != nil {
			return nil, err
		}
		if len(offers) == 0 {
			return nil, errOffersNotReady
		}
		return offers, nil
	}, cfg)

	result := PollResult{Offers: []domain.RawOffer{}, Attempts: attempts}

	switch {
	case err == nil:
		result.Offers = offers
		log.Info().Int("attempts", attempts).Int("offers", len(offers)).Msg("Offers ready")
		return result, nil
	case errors.Is(err, errOffersNotReady):
		log.Info().Int("attempts", attempts).Msg("Polling budget exhausted without offers")
		return result, nil
	case ctx.Err() != nil:
		return result, ctx.Err()
	default:
		log.Error().Err(err).Int("attempts", attempts).Msg("Final list offers attempt failed")
		return result, fmt.Errorf("list offers after %d attempts: %w", attempts, err)
	}
}
