package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                 string
	Title, Muted, Accent, Success, Error lipgloss.TerminalColor
	Border                               lipgloss.Border
	SymOK, SymFail                       string
	GaugeFill, GaugeEmpty                string
	Colorless                            bool
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:       "classic",
		Title:      lipgloss.Color("#ECBEBE"),
		Muted:      lipgloss.Color("8"),
		Accent:     lipgloss.Color("12"),
		Success:    lipgloss.Color("42"),
		Error:      lipgloss.Color("9"),
		Border:     lipgloss.RoundedBorder(),
		SymOK:      "✔",
		SymFail:    "✖",
		GaugeFill:  "█",
		GaugeEmpty: "░",
	}
}

// SetTheme switches the current theme; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:       "neon",
			Title:      lipgloss.Color("13"),
			Muted:      lipgloss.Color("8"),
			Accent:     lipgloss.Color("14"),
			Success:    lipgloss.Color("10"),
			Error:      lipgloss.Color("9"),
			Border:     lipgloss.ThickBorder(),
			SymOK:      "✔",
			SymFail:    "✖",
			GaugeFill:  "▰",
			GaugeEmpty: "▱",
		}
	case "mono":
		current = Theme{
			Name:       "mono",
			Title:      lipgloss.NoColor{},
			Muted:      lipgloss.NoColor{},
			Accent:     lipgloss.NoColor{},
			Success:    lipgloss.NoColor{},
			Error:      lipgloss.NoColor{},
			Border:     lipgloss.NormalBorder(),
			SymOK:      "ok",
			SymFail:    "error:",
			GaugeFill:  "#",
			GaugeEmpty: "-",
			Colorless:  true,
		}
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func TitleStyle() lipgloss.Style { return lipgloss.NewStyle().Bold(true).Foreground(current.Title) }
func MutedStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(current.Muted) }
func AccentStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(current.Accent) }
func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(current.Success) }
func ErrorStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(current.Error).Bold(true) }
