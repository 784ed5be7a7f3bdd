package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/bmi/internal/model"
)

// historyItem adapts a HistoryEntry to bubbles/list.Item
type historyItem struct {
	entry model.HistoryEntry
}

func (i historyItem) FilterValue() string { return i.entry.BMI }

// historyDelegate renders one entry per line, numbered from 1.
type historyDelegate struct{}

func (d historyDelegate) Height() int                               { return 1 }
func (d historyDelegate) Spacing() int                              { return 0 }
func (d historyDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d historyDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(historyItem)
	if !ok {
		return
	}
	line := historyStyle.Render(" " + it.entry.Line(index+1) + " ")
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render(">") + " "
	}
	fmt.Fprint(w, prefix+line)
}

func newHistoryList(width, height int) list.Model {
	l := list.New(nil, historyDelegate{}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = mutedStyle
	return l
}

func historyItems(entries []model.HistoryEntry) []list.Item {
	out := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyItem{entry: e})
	}
	return out
}
