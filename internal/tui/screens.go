package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/tui/components"
)

// Screen is one tab of the application.
//
// Screens hold no shared state: Activate is called every time the tab
// becomes visible and reloads whatever the screen shows from the store.
type Screen interface {
	Title() string
	Activate() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	// Capturing reports whether a text input has focus, so global keys
	// must be passed through untouched.
	Capturing() bool
	Help() string
}

// DetailTarget identifies the image opened in the detail view
type DetailTarget struct {
	ImageURL    string
	OriginalURL string
	Label       string
	Color       string
}

// Identifier is the key the image is liked and recorded under
func (t DetailTarget) Identifier() string {
	if t.OriginalURL != "" {
		return t.OriginalURL
	}
	return t.ImageURL
}

func openDetailCmd(row components.ImageRow) tea.Cmd {
	target := DetailTarget{
		ImageURL:    row.URI,
		OriginalURL: row.OriginalURL,
		Label:       row.Title,
		Color:       row.Color,
	}
	return func() tea.Msg {
		return OpenDetailMsg{Target: target}
	}
}

// listKeys handles the keys shared by list-backed screens
func listKeys(list *components.ImageList, msg tea.KeyMsg) tea.Cmd {
	if list.IsFilterTyping() {
		return list.Update(msg)
	}
	switch {
	case key.Matches(msg, Keys.Filter):
		list.StartFilter()
		return nil
	case key.Matches(msg, Keys.Back):
		if list.IsFiltering() {
			list.ClearFilter()
			return nil
		}
	case key.Matches(msg, Keys.Enter):
		if row, ok := list.Selected(); ok {
			return openDetailCmd(row)
		}
		return nil
	}
	return list.Update(msg)
}
