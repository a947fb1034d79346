package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/domain"
	"github.com/mmcdole/walls/internal/tui/styles"
)

const defaultProfileEmail = "janedoe@example.com"

// ProfileScreen shows and edits the local user profile
type ProfileScreen struct {
	store   domain.RecordStore
	profile domain.Profile
	found   bool

	editing bool
	focus   int // 0 = name, 1 = email
	name    textinput.Model
	email   textinput.Model
}

func NewProfileScreen(store domain.RecordStore) *ProfileScreen {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 60

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 100

	return &ProfileScreen{store: store, name: name, email: email}
}

func (s *ProfileScreen) Title() string { return "Profile" }

func (s *ProfileScreen) Activate() tea.Cmd {
	s.stopEditing()
	return LoadProfileCmd(s.store)
}

func (s *ProfileScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ProfileLoadedMsg:
		// A failed load shows the defaults
		s.profile = msg.Profile
		s.found = msg.Found && msg.Err == nil
		return nil

	case ProfileSavedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrInvalidProfile) {
				return NoticeCmd(domain.Notice{Title: "Validation", Message: "Please enter your name.", Err: msg.Err})
			}
			return NoticeCmd(domain.Notice{Title: "Error", Message: "Failed to save profile.", Err: msg.Err})
		}
		s.stopEditing()
		return tea.Batch(
			NoticeCmd(domain.Notice{Title: "Saved", Message: "Profile updated."}),
			LoadProfileCmd(s.store),
		)

	case tea.KeyMsg:
		if !s.editing {
			if key.Matches(msg, Keys.Edit) {
				return s.startEditing()
			}
			return nil
		}

		switch msg.String() {
		case "esc":
			s.stopEditing()
			return nil
		case "tab", "shift+tab", "up", "down":
			return s.toggleFocus()
		case "enter":
			return SaveProfileCmd(s.store, domain.Profile{
				Name:  s.name.Value(),
				Email: s.email.Value(),
			})
		}

		var cmd tea.Cmd
		if s.focus == 0 {
			s.name, cmd = s.name.Update(msg)
		} else {
			s.email, cmd = s.email.Update(msg)
		}
		return cmd
	}
	return nil
}

func (s *ProfileScreen) startEditing() tea.Cmd {
	s.editing = true
	s.focus = 0
	s.name.SetValue(s.profile.Name)
	s.email.SetValue(s.profile.Email)
	s.email.Blur()
	return s.name.Focus()
}

func (s *ProfileScreen) stopEditing() {
	s.editing = false
	s.name.Blur()
	s.email.Blur()
}

func (s *ProfileScreen) toggleFocus() tea.Cmd {
	if s.focus == 0 {
		s.focus = 1
		s.name.Blur()
		return s.email.Focus()
	}
	s.focus = 0
	s.email.Blur()
	return s.name.Focus()
}

func (s *ProfileScreen) View() string {
	var b strings.Builder

	if s.editing {
		b.WriteString(styles.TitleStyle.Render("Edit Profile"))
		b.WriteString("\n\n")
		b.WriteString(styles.SubtitleStyle.Render("Name"))
		b.WriteString("\n")
		b.WriteString(s.name.View())
		b.WriteString("\n\n")
		b.WriteString(styles.SubtitleStyle.Render("Email"))
		b.WriteString("\n")
		b.WriteString(s.email.View())
		return b.String()
	}

	email := s.profile.Email
	if !s.found {
		email = defaultProfileEmail
	}

	card := styles.TitleStyle.Render(s.profile.DisplayName()) + "\n" +
		styles.SubtitleStyle.Render(email)
	b.WriteString(styles.CardStyle.Render(card))
	return b.String()
}

func (s *ProfileScreen) SetSize(width, height int) {
	s.name.Width = max(10, width-6)
	s.email.Width = max(10, width-6)
}

func (s *ProfileScreen) Capturing() bool { return s.editing }

func (s *ProfileScreen) Help() string {
	if s.editing {
		return styles.RenderHelp([2]string{"tab", "next field"}, [2]string{"enter", "save"}, [2]string{"esc", "cancel"})
	}
	return styles.RenderHelp([2]string{"e", "edit profile"})
}
