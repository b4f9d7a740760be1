package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a missing item, warehouse, order, address or country.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an operation the caller's role does not permit.
	ErrForbidden = errors.New("forbidden")

	// ErrEmptyCart marks a checkout attempted with nothing resolvable in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError reports bad caller input. It is a client error, not a
// system fault, and carries the offending field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
