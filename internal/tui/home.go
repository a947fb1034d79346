package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/catalog"
	"github.com/mmcdole/walls/internal/tui/components"
	"github.com/mmcdole/walls/internal/tui/styles"
)

// HomeScreen lists the curated catalog
type HomeScreen struct {
	catalog *catalog.Catalog
	list    *components.ImageList
}

func NewHomeScreen(c *catalog.Catalog) *HomeScreen {
	return &HomeScreen{
		catalog: c,
		list:    components.NewImageList("The catalog is empty"),
	}
}

func (s *HomeScreen) Title() string { return "Home" }

// Activate refreshes the rows; the catalog itself is static.
func (s *HomeScreen) Activate() tea.Cmd {
	all := s.catalog.All()
	rows := make([]components.ImageRow, len(all))
	for i, w := range all {
		rows[i] = components.ImageRow{
			Title:    w.Category,
			Subtitle: w.URI,
			Color:    w.Color,
			URI:      w.URI,
		}
	}
	s.list.SetRows(rows)
	return nil
}

func (s *HomeScreen) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return listKeys(s.list, keyMsg)
	}
	return nil
}

func (s *HomeScreen) View() string {
	return styles.TitleStyle.Render("Explore wallpapers") + "\n\n" + s.list.View()
}

func (s *HomeScreen) SetSize(width, height int) {
	s.list.SetSize(width, height-2)
}

func (s *HomeScreen) Capturing() bool { return s.list.IsFilterTyping() }

func (s *HomeScreen) Help() string {
	return styles.RenderHelp([2]string{"enter", "open"}, [2]string{"/", "filter"})
}
