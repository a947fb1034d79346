package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/walls/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	var body, help string
	if m.detail != nil {
		body = m.detail.View()
		help = m.detail.Help()
	} else {
		body = m.screens[m.active].View()
		help = m.screens[m.active].Help()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		styles.PanelStyle.Render(body),
	)

	if m.Height > 0 {
		// Pin the footer to the bottom
		content = lipgloss.NewStyle().Height(m.Height - 1).Render(content)
	}

	return content + "\n" + m.renderFooter(help)
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.screens))
	for i, s := range m.screens {
		if i == m.active {
			tabs[i] = styles.ActiveTabStyle.Render(s.Title())
		} else {
			tabs[i] = styles.InactiveTabStyle.Render(s.Title())
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderFooter(help string) string {
	if m.notice.Title == "" && m.notice.Message == "" {
		return help + styles.HelpDescStyle.Render(" • ") + styles.RenderHelp([2]string{"tab", "switch"}, [2]string{"q", "quit"})
	}

	text := m.notice.Title
	if m.notice.Message != "" {
		text += ": " + strings.ReplaceAll(m.notice.Message, "\n", " ")
	}
	if m.notice.IsError() {
		return styles.NoticeErrorStyle.Render(text)
	}
	return styles.NoticeStyle.Render(text)
}
