package domain

import (
	"errors"
	"fmt"
)

// Sentinel validation errors. These reject a request before any schedule is
// computed; they are never retried and never silently clamped.
var (
	ErrInvalidPrincipal  = errors.New("principal must be positive")
	ErrInvalidTerm       = errors.New("term must be positive")
	ErrInvalidRate       = errors.New("rate must not be negative")
	ErrInvalidMethod     = errors.New("unknown repayment method")
	ErrLTVExceeded       = errors.New("loan amount exceeds the template's LTV cap")
	ErrInvalidExitRule   = errors.New("unknown exit rule")
	ErrInvalidExitMonth  = errors.New("exit month outside the loan term")
	ErrInvalidObjective  = errors.New("unknown refinance objective")
	ErrInvalidRefiMonth  = errors.New("refinance month outside the old loan's remaining term")
	ErrCategoryMismatch  = errors.New("input shape does not match template category")
	ErrInvalidStressBump = errors.New("stress bump must be 0, 2 or 4")
	ErrInvalidGrace      = errors.New("grace period must fit inside the term")
	ErrTermOutOfBounds   = errors.New("term outside the template's allowed range")
)

// ValidationError annotates a sentinel with the offending field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Invalid wraps err as a ValidationError for field.
func Invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
