package providers

import (
	"errors"
	"fmt"
)

// StatusError describes a non-success upstream response. It is only ever logged:
// callers see the response as absent.
type StatusError struct {
	Resource   Resource
	Key        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s/%s: unexpected status %d", e.Resource, e.Key, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
