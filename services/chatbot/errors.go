package chatbot

import (
	"errors"
	"fmt"
)

// ErrLoginRequired signals that the caller must authenticate first.
var ErrLoginRequired = errors.New("please login first")

// ErrIncompleteAddress signals that the user's stored address is missing a
// street, city or pincode; the client should prompt an address-edit flow.
var ErrIncompleteAddress = errors.New("please add your address first")

// ValidationError indicates a missing or malformed request field.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ServiceNotFoundError indicates the requested service does not exist.
type ServiceNotFoundError struct {
	ServiceID string
}

func (e ServiceNotFoundError) Error() string {
	return fmt.Sprintf("service %s not found", e.ServiceID)
}

// PersistenceError wraps a data-store failure.
type PersistenceError struct {
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("persistence error: %v", e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}
