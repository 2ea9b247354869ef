// FILE: logviewer/src/internal/tui/keys.go
package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the pager key bindings
type keyMap struct {
	Quit key.Binding
	Help key.Binding

	// Pages
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding

	// Scrolling inside a page
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Refresh     key.Binding
	AutoRefresh key.Binding
	ToggleFull  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right", "l"),
			key.WithHelp("n/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left", "h"),
			key.WithHelp("p/←", "previous page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("home", "<"),
			key.WithHelp("<", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("end", ">"),
			key.WithHelp(">", "last page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "scroll page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "scroll page down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		AutoRefresh: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle auto refresh"),
		),
		ToggleFull: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand entries"),
		),
	}
}

// ShortHelp returns key bindings for the status line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Refresh, k.AutoRefresh, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage},
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Refresh, k.AutoRefresh, k.ToggleFull},
		{k.Help, k.Quit},
	}
}
