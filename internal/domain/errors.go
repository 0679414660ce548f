package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across layers. Wrap them with fmt.Errorf("...: %w", err).
var (
	// ErrInvalidRequest indicates the search parameters failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingCredentials indicates the provider API key is not configured.
	ErrMissingCredentials = errors.New("provider credentials not configured")

	// ErrUpstream indicates the provider answered with a non-success status.
	ErrUpstream = errors.New("upstream provider error")

	// ErrMalformedOffer indicates a raw offer lacks the fields needed for transformation.
	ErrMalformedOffer = errors.New("malformed offer")

	// ErrNoOffers indicates the provider produced no offers within the polling budget.
	ErrNoOffers = errors.New("no offers available")
)

// UpstreamError carries the status and body of a failed provider call.
type UpstreamError struct {
	// Operation names the provider call (e.g., "create offer request")
	Operation string

	// StatusCode is the HTTP status returned by the provider
	StatusCode int

	// Body is the raw response body, kept for logging and verbatim proxying
	Body []byte
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: provider returned status %d", e.Operation, e.StatusCode)
}

// Unwrap lets errors.Is match ErrUpstream.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// NewUpstreamError creates an UpstreamError for the given operation.
func NewUpstreamError(operation string, statusCode int, body []byte) *UpstreamError {
	return &UpstreamError{
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
	}
}
