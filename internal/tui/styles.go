package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ------- screen styling (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ECBEBE"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AF4B4B"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	historyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C3E50")).Background(lipgloss.Color("#EAE1E1"))

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C8A7A7")).
			Padding(0, 1)
	focusedInputStyle = inputStyle.BorderForeground(lipgloss.Color("#E48484"))

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 2).
			Align(lipgloss.Center)
	resultValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))

	switchOn  = "[ ●]"
	switchOff = "[● ]"
)

// panelString frames the whole screen.
func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
