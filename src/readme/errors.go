package readme

import (
	"errors"
	"fmt"
)

// Update failures. Callers classify them with errors.Is.
var (
	ErrFileNotFound        = errors.New("file not found")
	ErrFetch               = errors.New("fetch failed")
	ErrMarkerNotFound      = errors.New("marker not found")
	ErrStartMarkerNotFound = errors.New("start marker not found")
	ErrEndMarkerNotFound   = errors.New("end marker not found")
	ErrFragmentRejected    = errors.New("fragment rejected")
)

// FetchError wraps a fragment retrieval failure with the source it came from.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes every FetchError match ErrFetch.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// IsMarkerError reports whether err is one of the marker-not-found failures
// of either mode.
func IsMarkerError(err error) bool {
	return errors.Is(err, ErrMarkerNotFound) ||
		errors.Is(err, ErrStartMarkerNotFound) ||
		errors.Is(err, ErrEndMarkerNotFound)
}
