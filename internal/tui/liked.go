package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/catalog"
	"github.com/mmcdole/walls/internal/domain"
	"github.com/mmcdole/walls/internal/tui/components"
	"github.com/mmcdole/walls/internal/tui/styles"
)

// LikedScreen shows liked images, newest first.
// Load failures show the empty state without a notice.
type LikedScreen struct {
	store   domain.RecordStore
	catalog *catalog.Catalog
	list    *components.ImageList
}

func NewLikedScreen(store domain.RecordStore, c *catalog.Catalog) *LikedScreen {
	return &LikedScreen{
		store:   store,
		catalog: c,
		list:    components.NewImageList("No liked wallpapers yet ❤️"),
	}
}

func (s *LikedScreen) Title() string { return "Liked" }

func (s *LikedScreen) Activate() tea.Cmd {
	return LoadLikedCmd(s.store)
}

func (s *LikedScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case LikedLoadedMsg:
		rows := make([]components.ImageRow, 0, len(msg.Items))
		for _, it := range msg.Items {
			row := components.ImageRow{
				Title:    "Liked",
				Subtitle: it.URI + "  " + it.LikedTime().Format("Jan 2 15:04"),
				URI:      it.URI,
			}
			if w, err := s.catalog.Lookup(it.URI); err == nil {
				row.Title = w.Category
				row.Color = w.Color
			}
			rows = append(rows, row)
		}
		s.list.SetRows(rows)
		return nil

	case tea.KeyMsg:
		return listKeys(s.list, msg)
	}
	return nil
}

func (s *LikedScreen) View() string {
	return styles.TitleStyle.Render("Your Liked Wallpapers") + "\n\n" + s.list.View()
}

func (s *LikedScreen) SetSize(width, height int) {
	s.list.SetSize(width, height-2)
}

func (s *LikedScreen) Capturing() bool { return s.list.IsFilterTyping() }

func (s *LikedScreen) Help() string {
	return styles.RenderHelp([2]string{"enter", "open"}, [2]string{"/", "filter"}, [2]string{"r", "refresh"})
}
