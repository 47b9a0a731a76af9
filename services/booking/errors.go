package booking

import (
	"errors"
	"fmt"
)

// ErrNotOwner indicates the requester does not own the booking.
var ErrNotOwner = errors.New("booking belongs to another user")

// ErrNotFound indicates the booking does not exist.
var ErrNotFound = errors.New("booking not found")

// InvalidInputError indicates a rejected booking form field.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid booking input: %s", e.Reason)
}

// InvalidTransitionError indicates a status-dependent operation attempted in
// the wrong status.
type InvalidTransitionError struct {
	Status string
	Op     string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Op, e.Status)
}
