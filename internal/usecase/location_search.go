package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/cache"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/logger"
)

// Location search defaults.
const (
	MinLocationQueryLength   = 2
	DefaultLocationCacheTTL  = 10 * time.Minute
	DefaultLocationMaxResult = 10
)

const locationCacheNamespace = "locations"

// LocationSearchUseCase defines the interface for location autocomplete.
type LocationSearchUseCase interface {
	// Search returns suggestions for query. Queries shorter than two
	// characters return an empty list without touching the provider.
	Search(ctx context.Context, query string) ([]domain.LocationSuggestion, error)
}

// LocationSearchConfig contains configuration options for location search.
type LocationSearchConfig struct {
	CacheTTL   time.Duration
	MaxResults int
}

type locationSearchUseCase struct {
	places     domain.PlaceProvider
	cache      cache.Cache
	directory  func(query string, limit int) []domain.LocationSuggestion
	cacheTTL   time.Duration
	maxResults int
	log        *logger.Logger
}

// NewLocationSearchUseCase creates a location search backed by places, with
// results cached in c (nil disables caching) and directory used when the
// provider fails.
func NewLocationSearchUseCase(
	places domain.PlaceProvider,
	c cache.Cache,
	directory func(query string, limit int) []domain.LocationSuggestion,
	config *LocationSearchConfig,
	log *logger.Logger,
) LocationSearchUseCase {
	uc := &locationSearchUseCase{
		places:     places,
		cache:      c,
		directory:  directory,
		cacheTTL:   DefaultLocationCacheTTL,
		maxResults: DefaultLocationMaxResult,
		log:        logger.OrNop(log),
	}
	if uc.cache == nil {
		uc.cache = cache.NewNoOpCache()
	}
	if config != nil {
		if config.CacheTTL > 0 {
			uc.cacheTTL = config.CacheTTL
		}
		if config.MaxResults > 0 {
			uc.maxResults = config.MaxResults
		}
	}
	return uc
}

// Search implements LocationSearchUseCase.Search.
func (uc *locationSearchUseCase) Search(ctx context.Context, query string) ([]domain.LocationSuggestion, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinLocationQueryLength {
		return []domain.LocationSuggestion{}, nil
	}

	key := cache.Key(locationCacheNamespace, strings.ToLower(query))
	if cached, ok := cache.GetJSON[[]domain.LocationSuggestion](ctx, uc.cache, key); ok {
		return cached, nil
	}

	suggestions, err := uc.places.SuggestPlaces(ctx, query)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		uc.log.Warn().Err(err).Str("query", query).Msg("Place suggestions failed, using airport directory")
		return uc.fromDirectory(query), nil
	}

	if suggestions == nil {
		suggestions = []domain.LocationSuggestion{}
	}
	if len(suggestions) > uc.maxResults {
		suggestions = suggestions[:uc.maxResults]
	}

	if err := cache.SetJSON(ctx, uc.cache, key, suggestions, uc.cacheTTL); err != nil {
		uc.log.Warn().Err(err).Msg("Failed to cache place suggestions")
	}

	return suggestions, nil
}

func (uc *locationSearchUseCase) fromDirectory(query string) []domain.LocationSuggestion {
	if uc.directory == nil {
		return []domain.LocationSuggestion{}
	}
	return uc.directory(query, uc.maxResults)
}

var _ LocationSearchUseCase = (*locationSearchUseCase)(nil)
