package scrape

import (
	"errors"
	"fmt"
)

// Errors for field extraction.
var (
	ErrFieldNotFound = errors.New("field not found")
	ErrValueNotFound = errors.New("field has no value")
)

// FieldError reports which field could not be extracted.
// Err is ErrFieldNotFound or ErrValueNotFound.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("scrape %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
