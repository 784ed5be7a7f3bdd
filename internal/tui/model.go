package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/bmi/internal/bmi"
	"github.com/Makepad-fr/bmi/internal/locale"
	"github.com/Makepad-fr/bmi/internal/session"
	"github.com/Makepad-fr/bmi/internal/store/jsonstore"
)

// Options tune the screen.
type Options struct {
	Messages      locale.Messages
	FlashDuration time.Duration
	ExportPath    string
}

const (
	fieldHeight = iota
	fieldWeight
	fieldCount
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model of the calculator screen. All calculator
// state lives in the session controller; the model only holds widgets and
// transient feedback.
type Model struct {
	ctrl *session.Controller
	opt  Options

	inputs  [fieldCount]textinput.Model
	focus   int
	history list.Model
	keys    keyMap
	help    help.Model

	flash    *flash
	flashSeq int
	fieldErr bmi.Field // inline marker under the field that failed

	width, height int
}

// New builds the screen around ctrl. The height field starts focused.
func New(ctrl *session.Controller, opt Options) Model {
	if opt.FlashDuration <= 0 {
		opt.FlashDuration = 3 * time.Second
	}
	if opt.Messages == (locale.Messages{}) {
		opt.Messages = locale.MustLookup(locale.Default)
	}
	m := Model{
		ctrl:    ctrl,
		opt:     opt,
		history: newHistoryList(defaultWidth-4, 5),
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 16
		m.inputs[i] = ti
	}
	m.inputs[fieldHeight].Placeholder = "Enter height"
	m.inputs[fieldWeight].Placeholder = "Enter weight"
	m.inputs[fieldHeight].SetValue(ctrl.Height())
	m.inputs[fieldWeight].SetValue(ctrl.Weight())
	m.inputs[fieldHeight].Focus()
	m.history.SetItems(historyItems(ctrl.History()))
	return m
}

// Run starts the program in the alternate screen and blocks until quit.
func Run(ctrl *session.Controller, opt Options) error {
	p := tea.NewProgram(New(ctrl, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// exportDoneMsg reports the outcome of an export command.
type exportDoneMsg struct {
	path    string
	entries int
	err     error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case flashExpiredMsg:
		if m.flash != nil && m.flash.seq == msg.seq {
			m.flash = nil
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.ctrl.Log().Errorw("export failed", "path", msg.path, "err", msg.err)
			return m, m.showFlash("export: "+msg.err.Error(), flashError)
		}
		m.ctrl.Log().Infow("history exported", "path", msg.path, "entries", msg.entries)
		return m, m.showFlash(fmt.Sprintf("exported %d entries to %s", msg.entries, msg.path), flashInfo)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Calculate):
			return m, m.calculate()
		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil
		case key.Matches(msg, m.keys.Units):
			m.ctrl.ToggleUnitMode()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case key.Matches(msg, m.keys.Export):
			return m, m.export()
		case key.Matches(msg, m.keys.Scroll):
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncInputs()
	return m, cmd
}

// syncInputs pushes the widget text into the controller. Editing the field
// that carries an inline error removes the marker.
func (m *Model) syncInputs() {
	h, w := m.inputs[fieldHeight].Value(), m.inputs[fieldWeight].Value()
	if m.fieldErr == bmi.FieldHeight && h != m.ctrl.Height() {
		m.fieldErr = ""
	}
	if m.fieldErr == bmi.FieldWeight && w != m.ctrl.Weight() {
		m.fieldErr = ""
	}
	m.ctrl.SetHeight(h)
	m.ctrl.SetWeight(w)
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *Model) calculate() tea.Cmd {
	m.syncInputs()
	if err := m.ctrl.Calculate(); err != nil {
		if f, ok := bmi.FieldOf(err); ok {
			m.fieldErr = f
		}
		return m.showFlash(m.opt.Messages.Message(err), flashError)
	}
	m.fieldErr = ""
	m.flash = nil
	m.history.ResetSelected()
	return m.history.SetItems(historyItems(m.ctrl.History()))
}

func (m *Model) clear() {
	m.ctrl.Clear()
	m.inputs[fieldHeight].SetValue("")
	m.inputs[fieldWeight].SetValue("")
	m.fieldErr = ""
	m.flash = nil
}

func (m *Model) export() tea.Cmd {
	if m.ctrl.HistoryLen() == 0 {
		return m.showFlash("nothing to export yet", flashInfo)
	}
	snap := m.ctrl.Snapshot()
	path := m.opt.ExportPath
	return func() tea.Msg {
		p, err := jsonstore.Export(path, snap)
		if p == "" {
			p = path
		}
		return exportDoneMsg{path: p, entries: len(snap.Entries), err: err}
	}
}
