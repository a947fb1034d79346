package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Enter   key.Binding
	Back    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	Tab5    key.Binding

	// Actions
	Quit    key.Binding
	Filter  key.Binding
	Refresh key.Binding
	Edit    key.Binding

	// Detail view
	Like         key.Binding
	Share        key.Binding
	DownloadOnly key.Binding
	SetHome      key.Binding
	SetLock      key.Binding
	SetBoth      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Tab1: key.NewBinding(key.WithKeys("1")),
		Tab2: key.NewBinding(key.WithKeys("2")),
		Tab3: key.NewBinding(key.WithKeys("3")),
		Tab4: key.NewBinding(key.WithKeys("4")),
		Tab5: key.NewBinding(key.WithKeys("5")),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),

		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		DownloadOnly: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		SetHome: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home screen"),
		),
		SetLock: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "lock screen"),
		),
		SetBoth: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "both"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
