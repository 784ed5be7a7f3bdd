// Package bmi holds the arithmetic and classification rules for Body Mass
// Index. Everything here is pure; session state lives in internal/session.
package bmi

import (
	"math"
	"strconv"
	"strings"

	"github.com/Makepad-fr/bmi/internal/model"
)

const (
	poundsToKg = 0.453592
	inchesToM  = 0.0254
	cmPerM     = 100.0
)

// Result is a validated, rounded calculation.
type Result struct {
	Value    float64 // rounded to one decimal
	Text     string  // Value formatted with exactly one decimal
	HeightM  float64
	WeightKg float64
}

// Category returns the classification of the rounded value.
func (r Result) Category() Category { return Classify(r.Value) }

// Compute validates the raw height and weight text, normalizes them to
// meters and kilograms according to mode and returns the rounded BMI.
// Empty fields fail with ErrMissingInput before any parsing happens.
func Compute(height, weight string, mode model.UnitMode) (Result, error) {
	if height == "" {
		return Result{}, &FieldError{Field: FieldHeight, Err: ErrMissingInput}
	}
	if weight == "" {
		return Result{}, &FieldError{Field: FieldWeight, Err: ErrMissingInput}
	}

	h, err := parsePositive(FieldHeight, height)
	if err != nil {
		return Result{}, err
	}
	w, err := parsePositive(FieldWeight, weight)
	if err != nil {
		return Result{}, err
	}

	var heightM, weightKg float64
	if mode == model.Imperial {
		weightKg = w * poundsToKg
		heightM = h * inchesToM
	} else {
		weightKg = w
		heightM = h / cmPerM
	}

	sq := heightM * heightM
	if sq == 0 || math.IsInf(sq, 0) {
		return Result{}, &FieldError{Field: FieldHeight, Value: height, Err: ErrInvalidValue}
	}
	v := Round1(weightKg / sq)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Result{}, &FieldError{Field: FieldWeight, Value: weight, Err: ErrInvalidValue}
	}
	return Result{
		Value:    v,
		Text:     Format(v),
		HeightM:  heightM,
		WeightKg: weightKg,
	}, nil
}

// parsePositive accepts plain decimal notation only. ParseFloat also takes
// Go literal forms (digit separators, hex mantissas) which are refused here.
func parsePositive(f Field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if !isDecimal(s) {
		return 0, &FieldError{Field: f, Value: raw, Err: ErrInvalidValue}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, &FieldError{Field: f, Value: raw, Err: ErrInvalidValue}
	}
	return n, nil
}

func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	digits := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Format renders v with exactly one fractional digit.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
