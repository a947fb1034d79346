package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.detail != nil {
		if key.Matches(msg, Keys.Quit) && !m.detail.Busy() {
			return m, tea.Quit
		}
		return m, m.detail.Update(msg)
	}

	screen := m.screens[m.active]
	if screen.Capturing() {
		return m, screen.Update(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.NextTab):
		return m.switchTab((m.active + 1) % len(m.screens))
	case key.Matches(msg, Keys.PrevTab):
		return m.switchTab((m.active + len(m.screens) - 1) % len(m.screens))
	case key.Matches(msg, Keys.Tab1):
		return m.switchTab(TabHome)
	case key.Matches(msg, Keys.Tab2):
		return m.switchTab(TabSearch)
	case key.Matches(msg, Keys.Tab3):
		return m.switchTab(TabLiked)
	case key.Matches(msg, Keys.Tab4):
		return m.switchTab(TabDownloads)
	case key.Matches(msg, Keys.Tab5):
		return m.switchTab(TabProfile)
	case key.Matches(msg, Keys.Refresh):
		return m, screen.Activate()
	}

	return m, screen.Update(msg)
}

// switchTab shows tab i and reloads it
func (m Model) switchTab(i int) (tea.Model, tea.Cmd) {
	m.active = i
	return m, m.screens[i].Activate()
}
