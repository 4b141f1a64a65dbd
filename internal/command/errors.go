package command

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrNotFound        = errors.New("command: contact not found")
	ErrMissingArgument = errors.New("command: missing argument")
)

// FormatError reports a command given the wrong number of arguments.
type FormatError struct {
	Command string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("command: invalid command format for %q: %s", e.Command, e.Reason)
}

// UnexpectedError carries a panic recovered while running a command.
type UnexpectedError struct {
	Value any
}

func (e *UnexpectedError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}
