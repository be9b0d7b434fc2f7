package errdef

import (
	"errors"
	"fmt"
)

func NewBadRequest(format string, a ...any) error {
	return badRequest{fmt.Errorf(format, a...)}
}

type badRequest struct{ error }

func IsBadRequest(err error) bool {
	var e badRequest
	return errors.As(err, &e)
}

// NewInvalidIdentifier creates an error representing an identifier that is not
// well-formed, as opposed to a well-formed identifier that matches nothing.
func NewInvalidIdentifier(format string, a ...any) error {
	return invalidIdentifier{fmt.Errorf(format, a...)}
}

type invalidIdentifier struct{ error }

func IsInvalidIdentifier(err error) bool {
	var e invalidIdentifier
	return errors.As(err, &e)
}

// NewValidation creates an error carrying field-level validation messages.
func NewValidation(fields map[string]string) error {
	return validation{error: errors.New("validation error"), fields: fields}
}

type validation struct {
	error
	fields map[string]string
}

func IsValidation(err error) bool {
	var e validation
	return errors.As(err, &e)
}

// ValidationFields returns the field-level messages carried by a validation
// error, if err is one.
func ValidationFields(err error) (map[string]string, bool) {
	var e validation
	if errors.As(err, &e) {
		return e.fields, true
	}
	return nil, false
}

func NewDuplicated(format string, a ...any) error {
	return duplicated{fmt.Errorf(format, a...)}
}

type duplicated struct{ error }

func IsDuplicated(err error) bool {
	var e duplicated
	return errors.As(err, &e)
}

// NewNotFound creates an error representing a resource that could not be found.
func NewNotFound(format string, a ...any) error {
	return notFound{fmt.Errorf(format, a...)}
}

type notFound struct{ error }

// IsNotFound returns true if err is an error representing a resource that could not be found and false otherwise.
func IsNotFound(err error) bool {
	var e notFound
	return errors.As(err, &e)
}

// NewConflict creates an error representing a conflicting state.
func NewConflict(format string, a ...any) error {
	return conflict{fmt.Errorf(format, a...)}
}

type conflict struct{ error }

// IsConflict returns true if err is an error representing a conflict and false otherwise.
func IsConflict(err error) bool {
	var e conflict
	return errors.As(err, &e)
}
