// Package mock provides test doubles for the flight offer service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, offers that appear late).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-offer-service/internal/domain"
)

// OfferProvider is a configurable implementation of domain.OfferProvider.
type OfferProvider struct {
	name        string
	handle      domain.OfferRequestHandle
	createErr   error
	offers      []domain.RawOffer
	readyAfter  int
	listErr     error
	delay       time.Duration
	createCalls int
	listCalls   int
	mu          sync.Mutex
}

// NewOfferProvider creates a provider that hands out handle "orq_mock" and
// never produces offers until configured with WithOffers.
func NewOfferProvider(name string) *OfferProvider {
	return &OfferProvider{
		name:   name,
		handle: "orq_mock",
	}
}

// WithOffers makes ListOffers return offers from attempt readyAfter+1 on;
// earlier attempts return an empty list.
func (p *OfferProvider) WithOffers(offers []domain.RawOffer, readyAfter int) *OfferProvider {
	p.offers = offers
	p.readyAfter = readyAfter
	return p
}

// WithCreateError makes CreateOfferRequest fail.
func (p *OfferProvider) WithCreateError(err error) *OfferProvider {
	p.createErr = err
	return p
}

// WithListError makes every ListOffers call fail.
func (p *OfferProvider) WithListError(err error) *OfferProvider {
	p.listErr = err
	return p
}

// WithDelay makes every call wait d before answering.
func (p *OfferProvider) WithDelay(d time.Duration) *OfferProvider {
	p.delay = d
	return p
}

// Name returns the provider's identifier.
func (p *OfferProvider) Name() string {
	return p.name
}

// CreateOfferRequest implements domain.OfferProvider.
func (p *OfferProvider) CreateOfferRequest(ctx context.Context, req domain.SearchRequest) (domain.OfferRequestHandle, error) {
	p.mu.Lock()
	p.createCalls++
	p.mu.Unlock()

	if err := p.wait(ctx); err != nil {
		return "", err
	}
	if p.createErr != nil {
		return "", p.createErr
	}
	return p.handle, nil
}

// ListOffers implements domain.OfferProvider.
func (p *OfferProvider) ListOffers(ctx context.Context, handle domain.OfferRequestHandle) ([]domain.RawOffer, error) {
	p.mu.Lock()
	p.listCalls++
	attempt := p.listCalls
	p.mu.Unlock()

	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.listErr != nil {
		return nil, p.listErr
	}
	if handle != p.handle {
		return nil, fmt.Errorf("unknown offer request %q", handle)
	}
	if attempt <= p.readyAfter {
		return []domain.RawOffer{}, nil
	}
	return p.offers, nil
}

func (p *OfferProvider) wait(ctx context.Context) error {
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay):
		}
	}
	return ctx.Err()
}

// CreateCalls returns the number of CreateOfferRequest calls.
func (p *OfferProvider) CreateCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.createCalls
}

// ListCalls returns the number of ListOffers calls.
func (p *OfferProvider) ListCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listCalls
}

// Ensure OfferProvider implements domain.OfferProvider at compile time.
var _ domain.OfferProvider = (*OfferProvider)(nil)

// SampleRawOffers returns count nonstop offers between origin and destination
// departing on date, one hour apart.
func SampleRawOffers(count int, origin, destination, date string) []domain.RawOffer {
	offers := make([]domain.RawOffer, count)
	for i := range offers {
		from := domain.RawPlace{IATACode: origin, Name: origin + " Airport", CityName: origin}
		to := domain.RawPlace{IATACode: destination, Name: destination + " Airport", CityName: destination}
		offers[i] = domain.RawOffer{
			ID:            fmt.Sprintf("off_sample_%d", i+1),
			TotalAmount:   fmt.Sprintf("%d.00", 200+i*25),
			TotalCurrency: "USD",
			Owner:         domain.RawCarrier{Name: "Delta Air Lines", IATACode: "DL"},
			Slices: []domain.RawSlice{{
				Origin:      from,
				Destination: to,
				Duration:    "PT5H30M",
				Segments: []domain.RawSegment{{
					MarketingCarrier:             domain.RawCarrier{Name: "Delta Air Lines", IATACode: "DL"},
					MarketingCarrierFlightNumber: fmt.Sprintf("%d", 100+i),
					Origin:                       from,
					Destination:                  to,
					DepartingAt:                  fmt.Sprintf("%sT%02d:00:00", date, 6+i),
					ArrivingAt:                   fmt.Sprintf("%sT%02d:30:00", date, 11+i),
					Duration:                     "PT5H30M",
				}},
			}},
		}
	}
	return offers
}
