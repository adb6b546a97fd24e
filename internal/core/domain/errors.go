package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionNotFound = errors.New("session not found")

// ValidationError identifies the first credential field that failed its
// shape rule. Validation stops at the first failure, so there is always
// exactly one failing field to report back to the form.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
