// services/errors.go
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced appointment or record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyClosed means a ServiceSale already references the appointment.
	ErrAlreadyClosed = errors.New("appointment already closed")
	// ErrInvalidStatus means the sale status is not completed or cancelled.
	ErrInvalidStatus = errors.New("invalid sale status")
)

// ValidationError reports missing or malformed caller input with a message
// meant to be shown as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
