package domain

// Source tells whether offers came from the live provider or the fallback dataset.
type Source string

// Available offer sources.
const (
	SourceLive Source = "live"
	SourceMock Source = "mock"
)

// FallbackReason explains why a search was answered with fallback data.
type FallbackReason string

// Reasons for serving fallback offers.
const (
	ReasonNone               FallbackReason = ""
	ReasonMissingCredentials FallbackReason = "missing_credentials"
	ReasonUpstreamError      FallbackReason = "upstream_error"
	ReasonNoOffers           FallbackReason = "no_offers"
	ReasonTimeout            FallbackReason = "timeout"
)

// SearchResult is the tagged outcome of an offer search.
type SearchResult struct {
	// Flights contains the offers in provider order
	Flights []FlightOffer `json:"flights"`

	// Source is "live" or "mock"
	Source Source `json:"source"`

	// FallbackReason is set when Source is "mock"
	FallbackReason FallbackReason `json:"fallbackReason,omitempty"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// OfferRequestID is the provider handle, empty if the request was never created
	OfferRequestID string `json:"offerRequestId,omitempty"`

	// PollAttempts is the number of list-offers calls issued
	PollAttempts int `json:"pollAttempts"`

	// TotalResults is the number of offers returned
	TotalResults int `json:"totalResults"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// NewLiveResult builds a live SearchResult. A nil slice is normalized to empty.
func NewLiveResult(flights []FlightOffer, metadata SearchMetadata) *SearchResult {
	if flights == nil {
		flights = []FlightOffer{}
	}
	metadata.TotalResults = len(flights)
	return &SearchResult{
		Flights:  flights,
		Source:   SourceLive,
		Metadata: metadata,
	}
}

// NewFallbackResult builds a mock SearchResult tagged with the reason.
func NewFallbackResult(flights []FlightOffer, reason FallbackReason, metadata SearchMetadata) *SearchResult {
	if flights == nil {
		flights = []FlightOffer{}
	}
	metadata.TotalResults = len(flights)
	return &SearchResult{
		Flights:        flights,
		Source:         SourceMock,
		FallbackReason: reason,
		Metadata:       metadata,
	}
}

// IsFallback returns true if the result was served from fallback data.
func (r *SearchResult) IsFallback() bool {
	return r.Source == SourceMock
}
