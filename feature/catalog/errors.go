package catalog

import "errors"

// ValidationError marks input problems (missing required fields, enum
// violations, duplicate unique keys). Handlers translate it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
