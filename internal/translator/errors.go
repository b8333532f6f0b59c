package translator

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig reports settings that make a request impossible: unknown
	// provider, blank model id, blank API key.
	ErrConfig = errors.New("configuration error")
	// ErrTransport reports a failed exchange with a vendor.
	ErrTransport = errors.New("transport error")
	// ErrShape reports a vendor response without the expected envelope.
	ErrShape = errors.New("unexpected response shape")
)

// APIError is returned when a vendor answers with a non-success status.
type APIError struct {
	Provider   ProviderID
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error %d:\n%s", e.Provider, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return ErrTransport
}

func shapeError(provider ProviderID, body []byte) error {
	return fmt.Errorf("%w from %s:\n%s", ErrShape, provider, truncate(string(body), maxErrorBody))
}
