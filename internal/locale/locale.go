package locale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/bmi/internal/bmi"
)

// Messages holds the fixed user-facing text for each input error kind.
type Messages struct {
	MissingInput string
	InvalidValue string
}

const Default = "en"

var catalog = map[string]Messages{
	"en": {
		MissingInput: "Please enter your weight and height",
		InvalidValue: "Please enter valid positive values",
	},
	"sq": {
		MissingInput: "Ju lutem shenoni peshen dhe gjatesine",
		InvalidValue: "Ju lutem shenoni vlerat e sakta pozitive",
	},
}

// Lookup returns the messages for tag, e.g. "en" or "sq".
func Lookup(tag string) (Messages, error) {
	m, ok := catalog[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return Messages{}, fmt.Errorf("unsupported locale %q", tag)
	}
	return m, nil
}

// MustLookup is Lookup falling back to the default locale.
func MustLookup(tag string) Messages {
	if m, err := Lookup(tag); err == nil {
		return m
	}
	return catalog[Default]
}

// Message returns the localized text for a calculation error. Errors that
// are neither input kind fall back to err.Error().
func (m Messages) Message(err error) string {
	switch {
	case errors.Is(err, bmi.ErrMissingInput):
		return m.MissingInput
	case errors.Is(err, bmi.ErrInvalidValue):
		return m.InvalidValue
	case err == nil:
		return ""
	}
	return err.Error()
}
