package bmi

import (
	"errors"
	"fmt"
)

// The two input error kinds. Neither is fatal; callers report and move on.
var (
	ErrMissingInput = errors.New("missing input")
	ErrInvalidValue = errors.New("invalid value")
)

// Field names the input that failed validation.
type Field string

const (
	FieldHeight Field = "height"
	FieldWeight Field = "weight"
)

// FieldError ties an input error kind to the field and text that caused it.
type FieldError struct {
	Field Field
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// FieldOf returns the failing field of err, if it carries one.
func FieldOf(err error) (Field, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field, true
	}
	return "", false
}
