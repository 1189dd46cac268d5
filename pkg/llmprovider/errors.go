package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	// ErrInvalidRequest is returned for a nil request or one without messages.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrProviderTimeout is returned when the fallback chain runs past MaxTotalTimeout.
	ErrProviderTimeout = errors.New("provider timeout")
)

// ProviderError records which provider produced the last failure in a chain.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
