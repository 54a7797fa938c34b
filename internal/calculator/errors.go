package calculator

import "errors"

var (
	// ErrDivideByZero is returned when an evaluation divides by zero. The
	// calculator has already been reset to its initial state when it is seen.
	ErrDivideByZero = errors.New("cannot divide by zero")

	// ErrUnknownInput is returned when a key, button action or sequence
	// character has no transition.
	ErrUnknownInput = errors.New("unknown input")

	errNoOperation = errors.New("no pending operation")
)

// DivideByZeroAlert is the notification text shown to the user.
const DivideByZeroAlert = "Cannot divide by zero!"
