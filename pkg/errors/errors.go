package relay_errors

import (
	"errors"
)

// Common errors
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrProviderRejected    = errors.New("provider rejected request")
)

// ProviderError is returned by every provider adapter. Kind is one of the
// sentinel errors above; Error() is the provider's own message so it can
// be shown to clients unchanged.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Unavailable wraps a transport level failure.
func Unavailable(provider string, err error) error {
	return &ProviderError{Provider: provider, Kind: ErrProviderUnavailable, Err: err}
}

// Rejected wraps an error answer from the provider.
func Rejected(provider string, err error) error {
	return &ProviderError{Provider: provider, Kind: ErrProviderRejected, Err: err}
}
