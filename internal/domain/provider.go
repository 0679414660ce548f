package domain

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

import "context"

// OfferProvider is the upstream flight-data provider used by the offer search.
type OfferProvider interface {
	// Name returns the provider identifier used in logs.
	Name() string

	// CreateOfferRequest submits a search and returns the provider handle.
	// It issues exactly one network call and never retries.
	CreateOfferRequest(ctx context.Context, req SearchRequest) (OfferRequestHandle, error)

	// ListOffers returns the offers currently priced for the handle.
	// An empty slice means pricing has not finished yet.
	ListOffers(ctx context.Context, handle OfferRequestHandle) ([]RawOffer, error)
}

// PlaceProvider returns location suggestions for autocomplete.
type PlaceProvider interface {
	SuggestPlaces(ctx context.Context, query string) ([]LocationSuggestion, error)
}

// OfferLookup fetches a single offer by id and returns the provider body verbatim.
type OfferLookup interface {
	GetOffer(ctx context.Context, offerID string) ([]byte, error)
}
