package domain

import "errors"

var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or malformed user-supplied field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
