package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/catalog"
	"github.com/mmcdole/walls/internal/domain"
	"github.com/mmcdole/walls/internal/fsys"
	"github.com/mmcdole/walls/internal/tui/components"
	"github.com/mmcdole/walls/internal/tui/styles"
)

// DownloadsScreen shows downloaded images whose files still exist
type DownloadsScreen struct {
	store   domain.RecordStore
	catalog *catalog.Catalog
	list    *components.ImageList
}

func NewDownloadsScreen(store domain.RecordStore, c *catalog.Catalog) *DownloadsScreen {
	return &DownloadsScreen{
		store:   store,
		catalog: c,
		list:    components.NewImageList("No wallpapers downloaded yet 😔"),
	}
}

func (s *DownloadsScreen) Title() string { return "Downloads" }

func (s *DownloadsScreen) Activate() tea.Cmd {
	return LoadDownloadsCmd(s.store)
}

func (s *DownloadsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DownloadsLoadedMsg:
		rows := make([]components.ImageRow, 0, len(msg.Records))
		for _, rec := range msg.Records {
			row := components.ImageRow{
				Title:       filepath.Base(fsys.StripScheme(rec.LocalPath)),
				Subtitle:    rec.OriginalURL,
				URI:         rec.LocalPath,
				OriginalURL: rec.OriginalURL,
			}
			if w, err := s.catalog.Lookup(rec.OriginalURL); err == nil {
				row.Color = w.Color
			}
			rows = append(rows, row)
		}
		s.list.SetRows(rows)

		if msg.Err != nil {
			return NoticeCmd(domain.Notice{
				Title:   "Error",
				Message: "Unable to load downloaded wallpapers.",
				Err:     msg.Err,
			})
		}
		return nil

	case tea.KeyMsg:
		return listKeys(s.list, msg)
	}
	return nil
}

func (s *DownloadsScreen) View() string {
	return styles.TitleStyle.Render("Your Downloaded Wallpapers") + "\n\n" + s.list.View()
}

func (s *DownloadsScreen) SetSize(width, height int) {
	s.list.SetSize(width, height-2)
}

func (s *DownloadsScreen) Capturing() bool { return s.list.IsFilterTyping() }

func (s *DownloadsScreen) Help() string {
	return styles.RenderHelp([2]string{"enter", "open"}, [2]string{"/", "filter"}, [2]string{"r", "refresh"})
}
