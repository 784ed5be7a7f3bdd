package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/bmi/internal/bmi"
)

// Gauge range; values outside are pinned to the ends.
const (
	gaugeMin = 10.0
	gaugeMax = 40.0
)

// Gauge renders a horizontal BMI scale of the given width with the bar
// filled up to v, followed by the formatted value.
func Gauge(v float64, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	pos := (v - gaugeMin) / (gaugeMax - gaugeMin)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	filled := int(pos * float64(width))
	bar := strings.Repeat(t.GaugeFill, filled) + strings.Repeat(t.GaugeEmpty, width-filled)
	if !t.Colorless {
		bar = lipgloss.NewStyle().Foreground(lipgloss.Color(bmi.ColorFor(v))).Render(bar)
	}
	return fmt.Sprintf("%s %s", bar, bmi.Format(v))
}

// Badge renders a category label on its band color.
func Badge(c bmi.Category) string {
	if Current().Colorless {
		return "[" + c.String() + "]"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(c.Color())).
		Padding(0, 1).
		Render(c.String())
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	border := lipgloss.NewStyle().
		Border(Current().Border).
		BorderForeground(Current().Muted).
		Padding(0, 1)
	fmt.Fprintln(w, border.Render(strings.Join(lines, "\n")))
}

// OK and Fail print one-line status messages.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, SuccessStyle().Render(Current().SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, ErrorStyle().Render(Current().SymFail+" "+msg))
}
