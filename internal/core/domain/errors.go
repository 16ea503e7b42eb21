package domain

import (
	"errors"
	"fmt"
)

// The game core fails in exactly two ways. InvalidInputError covers bad or
// missing arguments: blank names, unknown game codes, unknown accused players,
// role claims the settings forbid. InvalidStateError covers actions the game
// cannot accept right now: action not legal in the current phase, a second
// Leader or Insider, too few players to assign roles. Both are terminal for
// the single call and leave the game untouched; the transport layer reports
// the message verbatim to the caller.

type InvalidInputError struct {
	msg string
}

func (e *InvalidInputError) Error() string { return e.msg }

func NewInvalidInput(format string, args ...any) error {
	return &InvalidInputError{msg: fmt.Sprintf(format, args...)}
}

type InvalidStateError struct {
	msg string
}

func (e *InvalidStateError) Error() string { return e.msg }

func NewInvalidState(format string, args ...any) error {
	return &InvalidStateError{msg: fmt.Sprintf(format, args...)}
}

func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}

func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}
