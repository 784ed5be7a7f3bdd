package model

import (
	"fmt"
	"strings"
	"time"
)

// UnitMode selects how raw height/weight text is interpreted.
type UnitMode int

const (
	Metric UnitMode = iota
	Imperial
)

func (u UnitMode) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// Label is the unit tag recorded in history entries.
func (u UnitMode) Label() string {
	if u == Imperial {
		return "lb/in"
	}
	return "kg/cm"
}

func (u UnitMode) HeightUnit() string {
	if u == Imperial {
		return "in"
	}
	return "cm"
}

func (u UnitMode) WeightUnit() string {
	if u == Imperial {
		return "lb"
	}
	return "kg"
}

// Toggle returns the other mode.
func (u UnitMode) Toggle() UnitMode {
	if u == Imperial {
		return Metric
	}
	return Imperial
}

// ParseUnitMode accepts "metric" or "imperial" (case-insensitive).
func ParseUnitMode(s string) (UnitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	}
	return Metric, fmt.Errorf("unknown unit mode %q (want metric or imperial)", s)
}

// HistoryEntry records one successful calculation. Height and Weight hold
// the text exactly as typed, not the normalized values.
type HistoryEntry struct {
	BMI    string `json:"bmi"`
	Unit   string `json:"unit"`
	Height string `json:"height"`
	Weight string `json:"weight"`
}

// Line renders the entry for the history list; index is 1-based.
func (e HistoryEntry) Line(index int) string {
	return fmt.Sprintf("%d. BMI: %s (%s) | H: %s | W: %s", index, e.BMI, e.Unit, e.Height, e.Weight)
}

// Snapshot is what gets written by an export.
type Snapshot struct {
	SessionID  string         `json:"session_id"`
	ExportedAt time.Time      `json:"exported_at"`
	Entries    []HistoryEntry `json:"entries"`
}
