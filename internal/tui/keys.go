package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Calculate key.Binding
	Clear     key.Binding
	Units     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Export    key.Binding
	Scroll    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Calculate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Units:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "metric/imperial")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Export:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export history")),
		Scroll:    key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "history")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Calculate, k.Clear, k.Units, k.Next, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Calculate, k.Clear, k.Units},
		{k.Next, k.Prev, k.Scroll},
		{k.Export, k.Quit},
	}
}
