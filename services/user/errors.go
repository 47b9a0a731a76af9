package user

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials indicates the email/password pair did not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DuplicateAccountError indicates the email or username is already taken.
type DuplicateAccountError struct {
	Field string
}

func (e DuplicateAccountError) Error() string {
	return fmt.Sprintf("an account with this %s already exists", e.Field)
}
