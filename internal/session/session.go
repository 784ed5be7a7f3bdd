// Package session holds the state of one BMI calculator screen: the unit
// flag, the raw height and weight text, the current result and the history
// of successful calculations.
//
// A Controller is not safe for concurrent use. It is driven from a single
// event loop, one user action at a time.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/bmi/internal/bmi"
	"github.com/Makepad-fr/bmi/internal/logger"
	"github.com/Makepad-fr/bmi/internal/model"
)

// State is the trivial two-state machine of the screen.
type State int

const (
	NoResult State = iota
	HasResult
)

func (s State) String() string {
	if s == HasResult {
		return "has-result"
	}
	return "no-result"
}

type Controller struct {
	id      string
	log     *logger.Logger
	mode    model.UnitMode
	height  string
	weight  string
	result  *bmi.Result
	history []model.HistoryEntry // newest first
	now     func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger attaches a logger; the default discards.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithUnitMode sets the starting unit mode.
func WithUnitMode(m model.UnitMode) Option {
	return func(c *Controller) { c.mode = m }
}

// WithClock overrides time.Now for snapshots.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New returns a controller with empty inputs, no result and no history.
func New(opts ...Option) *Controller {
	c := &Controller{
		id:   uuid.NewString(),
		log:  logger.Nop(),
		mode: model.Metric,
		now:  time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	c.log = &logger.Logger{SugaredLogger: c.log.With("session", c.id)}
	c.log.Debugw("session started", "units", c.mode.String())
	return c
}

func (c *Controller) ID() string { return c.id }
func (c *Controller) Mode() model.UnitMode { return c.mode }
func (c *Controller) Height() string { return c.height }
func (c *Controller) Weight() string { return c.weight }
func (c *Controller) SetHeight(s string) { c.height = s }
func (c *Controller) SetWeight(s string) { c.weight = s }
func (c *Controller) HistoryLen() int { return len(c.history) }
func (c *Controller) Log() *logger.Logger { return c.log }

// State reports whether a result is currently shown.
func (c *Controller) State() State {
	if c.result != nil {
		return HasResult
	}
	return NoResult
}

// Result returns the current result, if any.
func (c *Controller) Result() (bmi.Result, bool) {
	if c.result == nil {
		return bmi.Result{}, false
	}
	return *c.result, true
}

// History returns a copy of the history, newest first.
func (c *Controller) History() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(c.history))
	copy(out, c.history)
	return out
}

// Calculate validates the current inputs and, on success, stores the
// result and prepends a history entry. On failure nothing changes and the
// returned error wraps bmi.ErrMissingInput or bmi.ErrInvalidValue.
func (c *Controller) Calculate() error {
	res, err := bmi.Compute(c.height, c.weight, c.mode)
	if err != nil {
		c.log.Infow("calculation rejected", "err", err, "units", c.mode.String())
		return err
	}
	c.result = &res

	entry := model.HistoryEntry{
		BMI:    res.Text,
		Unit:   c.mode.Label(),
		Height: c.height,
		Weight: c.weight,
	}
	c.history = append([]model.HistoryEntry{entry}, c.history...)

	c.log.Infow("calculated",
		"bmi", res.Text,
		"category", res.Category().String(),
		"units", c.mode.String(),
		"history", len(c.history),
	)
	return nil
}

// Clear empties the inputs and the result. History is kept.
func (c *Controller) Clear() {
	c.height = ""
	c.weight = ""
	c.result = nil
	c.log.Debugw("cleared", "history", len(c.history))
}

// ToggleUnitMode flips between metric and imperial. The entered text is not
// converted; it is simply read in the new unit on the next calculation.
func (c *Controller) ToggleUnitMode() model.UnitMode {
	c.mode = c.mode.Toggle()
	c.log.Debugw("units toggled", "units", c.mode.String())
	return c.mode
}

// Snapshot captures the history for export.
func (c *Controller) Snapshot() model.Snapshot {
	return model.Snapshot{
		SessionID:  c.id,
		ExportedAt: c.now().UTC(),
		Entries:    c.History(),
	}
}
