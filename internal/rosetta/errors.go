package rosetta

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a first-page search matches nothing in
// any of the configured buckets.
var ErrNotFound = errors.New("rosetta: no results found")

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rosetta: unexpected status %d from %s", e.StatusCode, e.URL)
}
