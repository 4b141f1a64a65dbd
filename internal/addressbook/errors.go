package addressbook

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrInvalidPhone = errors.New("addressbook: invalid phone number")
	ErrMissingField = errors.New("addressbook: required field missing")
)

// ValidationError reports a value rejected at construction time.
// It unwraps to the sentinel describing the broken rule.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("addressbook: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
