package routing

import (
	"errors"
	"fmt"
)

// Invalid-request errors, reported before any search work starts. A search
// that finds nothing is not an error; it returns an empty list.
var (
	// ErrNegativeTransferLimit is returned when the request carries an
	// explicit negative transfer bound. A missing bound gets the
	// configured default instead.
	ErrNegativeTransferLimit = errors.New("maximum transfer count must not be negative")

	// ErrSameLocation is returned when origin and destination are the
	// same location.
	ErrSameLocation = errors.New("origin and destination must differ")
)

// UnknownLocationError reports an origin or destination identifier that is
// not present in the schedule snapshot.
type UnknownLocationError struct {
	ID string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location %q", e.ID)
}

// IsInvalidRequest reports whether err is one of the invalid-request errors,
// as opposed to an internal failure.
func IsInvalidRequest(err error) bool {
	var unknownLocation *UnknownLocationError
	return errors.Is(err, ErrNegativeTransferLimit) ||
		errors.Is(err, ErrSameLocation) ||
		errors.As(err, &unknownLocation)
}
