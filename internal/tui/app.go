package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/catalog"
	"github.com/mmcdole/walls/internal/domain"
)

// Tab indexes
const (
	TabHome = iota
	TabSearch
	TabLiked
	TabDownloads
	TabProfile
)

const (
	noticeDuration = 4 * time.Second
	// Tab bar, blank line, footer
	chromeHeight = 4
)

// Model is the main Bubble Tea model for the application
type Model struct {
	store   domain.RecordStore
	actions ActionRunner
	logger  *slog.Logger

	screens []Screen
	active  int
	detail  *DetailView

	// Dimensions
	Width  int
	Height int

	// UI state
	notice    domain.Notice
	noticeSeq int
}

// NewModel creates a new application model
func NewModel(store domain.RecordStore, c *catalog.Catalog, actions ActionRunner, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		store:   store,
		actions: actions,
		logger:  logger,
		screens: []Screen{
			TabHome:      NewHomeScreen(c),
			TabSearch:    NewSearchScreen(c),
			TabLiked:     NewLikedScreen(store, c),
			TabDownloads: NewDownloadsScreen(store, c),
			TabProfile:   NewProfileScreen(store),
		},
		active: TabHome,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return m.screens[m.active].Activate()
}

// ActiveTab returns the index of the visible tab
func (m Model) ActiveTab() int { return m.active }

// DetailOpen reports whether the detail view is showing
func (m Model) DetailOpen() bool { return m.detail != nil }

// Notice returns the notice currently shown in the status bar
func (m Model) Notice() domain.Notice { return m.notice }

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		for _, s := range m.screens {
			s.SetSize(m.Width-4, m.Height-chromeHeight)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case OpenDetailMsg:
		m.detail = NewDetailView(m.store, m.actions, msg.Target)
		return m, m.detail.Activate()

	case CloseDetailMsg:
		m.detail = nil
		// Likes or downloads may have changed while the detail was open
		return m, m.screens[m.active].Activate()

	case NoticeMsg:
		m.noticeSeq++
		m.notice = msg.Notice
		if msg.Notice.IsError() {
			m.logger.Warn("notice", "title", msg.Notice.Title, "message", msg.Notice.Message, "error", msg.Notice.Err)
		}
		var cmd tea.Cmd
		if m.detail != nil {
			cmd = m.detail.Update(msg)
		}
		return m, tea.Batch(cmd, ClearStatusCmd(m.noticeSeq, noticeDuration))

	case ClearStatusMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = domain.Notice{}
		}
		return m, nil

	case LikeStateMsg:
		if m.detail != nil {
			return m, m.detail.Update(msg)
		}
		return m, nil
	}

	if m.detail != nil {
		if cmd := m.detail.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	// Data messages go to every screen; each ignores what it doesn't own
	var cmds []tea.Cmd
	for _, s := range m.screens {
		cmds = append(cmds, s.Update(msg))
	}
	return m, tea.Batch(cmds...)
}
