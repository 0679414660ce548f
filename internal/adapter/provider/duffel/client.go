// Package duffel is the HTTP adapter for the Duffel flights API. It
// implements domain.OfferProvider, domain.PlaceProvider and domain.OfferLookup.
package duffel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flight-search/flight-offer-service/internal/domain"
	"github.com/flight-search/flight-offer-service/internal/infrastructure/logger"
)

// ProviderName identifies this adapter in logs.
const ProviderName = "duffel"

// Defaults for the Duffel API.
const (
	DefaultBaseURL    = "https://api.duffel.com"
	DefaultAPIVersion = "v2"
	DefaultTimeout    = 10 * time.Second
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 8 << 20

// ErrBodyTooLarge reports a provider response over the read limit. It wraps
// domain.ErrUpstream so callers treat it like any other provider failure.
var ErrBodyTooLarge = fmt.Errorf("%w: response body exceeds %d bytes", domain.ErrUpstream, maxBodyBytes)

// Config holds the client settings. It is passed explicitly so tests can
// point the client at a stub server.
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string

	// Timeout bounds each individual HTTP call
	Timeout time.Duration
}

// Client talks to the Duffel API.
type Client struct {
	apiKey     string
	baseURL    string
	apiVersion string
	timeout    time.Duration
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a Client. A nil httpClient uses a dedicated client with
// default transport settings.
func NewClient(cfg Config, httpClient *http.Client, log *logger.Logger) *Client {
	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiVersion: cfg.APIVersion,
		timeout:    cfg.Timeout,
		httpClient: httpClient,
		log:        logger.OrNop(log).WithProvider(ProviderName),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.apiVersion == "" {
		c.apiVersion = DefaultAPIVersion
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	return c
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// CreateOfferRequest submits the search and returns the offer request id.
// It makes exactly one call and never retries.
func (c *Client) CreateOfferRequest(ctx context.Context, req domain.SearchRequest) (domain.OfferRequestHandle, error) {
	const op = "create offer request"

	body, err := json.Marshal(newOfferRequestPayload(req))
	if err != nil {
		return "", fmt.Errorf("%s: encode payload: %w", op, err)
	}

	query := url.Values{"return_offers": {"false"}}
	data, err := c.do(ctx, op, http.MethodPost, "/air/offer_requests", query, body)
	if err != nil {
		return "", err
	}

	var resp offerRequestResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}
	if resp.Data.ID == "" {
		return "", fmt.Errorf("%s: response has no offer request id", op)
	}

	c.log.Debug().
		Str("offer_request_id", resp.Data.ID).
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Msg("Offer request created")

	return domain.OfferRequestHandle(resp.Data.ID), nil
}

// ListOffers returns the offers priced so far for handle.
func (c *Client) ListOffers(ctx context.Context, handle domain.OfferRequestHandle) ([]domain.RawOffer, error) {
	const op = "list offers"

	query := url.Values{"offer_request_id": {handle.String()}}
	data, err := c.do(ctx, op, http.MethodGet, "/air/offers", query, nil)
	if err != nil {
		return nil, err
	}

	var resp offersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if resp.Data == nil {
		return []domain.RawOffer{}, nil
	}
	return resp.Data, nil
}

// GetOffer returns the provider's body for a single offer, unmodified.
// On a non-2xx answer the returned *domain.UpstreamError carries the body.
func (c *Client) GetOffer(ctx context.Context, offerID string) ([]byte, error) {
	return c.do(ctx, "get offer", http.MethodGet, "/air/offers/"+url.PathEscape(offerID), nil, nil)
}

// SuggestPlaces returns airports and cities matching query.
func (c *Client) SuggestPlaces(ctx context.Context, query string) ([]domain.LocationSuggestion, error) {
	const op = "suggest places"

	data, err := c.do(ctx, op, http.MethodGet, "/places/suggestions", url.Values{"query": {query}}, nil)
	if err != nil {
		return nil, err
	}

	var resp placesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	suggestions := make([]domain.LocationSuggestion, 0, len(resp.Data))
	for _, p := range resp.Data {
		if p.IATACode == "" {
			continue
		}
		suggestions = append(suggestions, p.toSuggestion())
	}
	return suggestions, nil
}

// do performs one authenticated call and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body []byte) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrMissingCredentials)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Duffel-Version", c.apiVersion)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}
	if len(data) > maxBodyBytes {
		c.log.Error().
			Str("operation", op).
			Int("status", resp.StatusCode).
			Int("limit_bytes", maxBodyBytes).
			Msg("Provider response too large")
		return nil, fmt.Errorf("%s: %w", op, ErrBodyTooLarge)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error().
			Str("operation", op).
			Int("status", resp.StatusCode).
			Bytes("body", truncate(data, 2048)).
			Dur("duration", time.Since(start)).
			Msg("Provider returned an error")
		return nil, domain.NewUpstreamError(op, resp.StatusCode, data)
	}

	c.log.Debug().
		Str("operation", op).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Provider call completed")

	return data, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}

// Ensure Client implements the provider interfaces at compile time.
var (
	_ domain.OfferProvider = (*Client)(nil)
	_ domain.PlaceProvider = (*Client)(nil)
	_ domain.OfferLookup   = (*Client)(nil)
)
