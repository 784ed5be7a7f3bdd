package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type flashKind int

const (
	flashInfo flashKind = iota
	flashError
)

// flash is a transient message under the form. It never blocks input.
type flash struct {
	text string
	kind flashKind
	seq  int
}

// flashExpiredMsg clears the flash with the same seq; a newer flash
// survives the timer of an older one.
type flashExpiredMsg struct{ seq int }

func (m *Model) showFlash(text string, kind flashKind) tea.Cmd {
	m.flashSeq++
	seq := m.flashSeq
	m.flash = &flash{text: text, kind: kind, seq: seq}
	return tea.Tick(m.opt.FlashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}

func (f *flash) view() string {
	if f == nil {
		return ""
	}
	if f.kind == flashError {
		return errorStyle.Render("✖ " + f.text)
	}
	return infoStyle.Render("✔ " + f.text)
}
