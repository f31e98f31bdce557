package singleton

import (
	"errors"
	"strconv"
)

var (
	// ErrNilConstructor is the panic value used when a holder is created
	// without a constructor. The mistake surfaces at wiring time, not on first Get.
	ErrNilConstructor = errors.New("singleton: nil constructor")

	// ErrNilInstance is wrapped in a ConstructionError when a fallible
	// constructor returns (nil, nil).
	ErrNilInstance = errors.New("singleton: constructor returned nil instance")
)

// ConstructionError is returned by Fallible.Get when an attempt to build the
// instance fails. The holder stays uninitialized; a later Get retries.
type ConstructionError struct {
	// Holder is the holder name (see WithName).
	Holder string

	// Attempt is the 1-based attempt number that failed.
	Attempt int

	// Err is the constructor's error.
	Err error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	// Example: singleton: construct "db" (attempt 2): dial refused
	msg := "singleton: construct " + strconv.Quote(e.Holder) + " (attempt " + strconv.Itoa(e.Attempt) + ")"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the constructor's error to errors.Is / errors.As.
func (e *ConstructionError) Unwrap() error { return e.Err }
