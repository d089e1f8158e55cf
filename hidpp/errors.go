package hidpp

import (
	"errors"
	"fmt"
)

// ValidationError reports a command input outside the domain the firmware
// accepts. Encoders return it before building anything, so a non-nil error
// guarantees no report bytes were produced.
type ValidationError struct {
	// Field names the rejected input, for example "red" or "speed".
	Field string

	// Value is the rejected input.
	Value int

	// Min and Max bound the accepted domain.
	Min, Max int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
