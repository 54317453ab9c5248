package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest marks requests the vendor rejected as malformed.
	// They are not retried against the same provider.
	ErrInvalidRequest      = errors.New("invalid request")
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError is a failure of one provider call. Kind is one of the
// sentinel errors above when the failure could be classified.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// classify wraps a vendor error, using the HTTP status when there is one.
func classify(provider string, status int, err error) error {
	var kind error
	switch {
	case status == http.StatusTooManyRequests:
		kind = ErrProviderRateLimited
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = ErrInvalidRequest
	case status == http.StatusGatewayTimeout || errors.Is(err, context.DeadlineExceeded):
		kind = ErrProviderTimeout
	}
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}

// retryable reports whether another attempt on the same provider can help.
func retryable(err error) bool {
	return !errors.Is(err, ErrInvalidRequest) && !errors.Is(err, context.Canceled)
}
