// tui/keys.go
package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Delete      key.Binding
	Colors      key.Binding
	CountrySort key.Binding
	SortName    key.Binding
	SortLast    key.Binding
	SortCountry key.Binding
	Reset       key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Delete:      key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete row")),
		Colors:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color rows")),
		CountrySort: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle country sort")),
		SortName:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "sort by name")),
		SortLast:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sort by last name")),
		SortCountry: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sort by country")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore deleted")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter country")),
		ClearFilter: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Delete, k.Colors, k.CountrySort, k.Reset, k.Filter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.SortName, k.SortLast, k.SortCountry, k.CountrySort},
		{k.Delete, k.Reset, k.Colors},
		{k.Filter, k.ClearFilter, k.Help, k.Quit},
	}
}
