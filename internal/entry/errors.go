package entry

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredField means store, item, or amount was empty.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrMissingOtherDetail means the "other" item was chosen without a detail.
	ErrMissingOtherDetail = errors.New("missing detail for other item")
	// ErrInvalidAmount means the amount is not a non-negative integer.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ValidationError ties an error kind to the input field that caused it.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
