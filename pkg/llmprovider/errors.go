package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProviderConfigured indicates the manager has nothing to call
	ErrNoProviderConfigured = errors.New("no provider configured")

	// ErrUnknownProvider indicates the configured provider name is not supported
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrEmptyResponse indicates the provider returned no content
	ErrEmptyResponse = errors.New("empty response")
)

// ProviderError wraps provider-specific errors
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
