package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/catalog"
	"github.com/mmcdole/walls/internal/tui/components"
	"github.com/mmcdole/walls/internal/tui/styles"
)

// SearchScreen searches the catalog by category
type SearchScreen struct {
	catalog     *catalog.Catalog
	input       textinput.Model
	list        *components.ImageList
	suggestions []string
}

func NewSearchScreen(c *catalog.Catalog) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Search by category..."
	ti.CharLimit = 50
	ti.Prompt = "> "
	ti.PromptStyle = styles.FilterPromptStyle

	return &SearchScreen{
		catalog: c,
		input:   ti,
		list:    components.NewImageList(""),
	}
}

func (s *SearchScreen) Title() string { return "Search" }

func (s *SearchScreen) Activate() tea.Cmd {
	s.runSearch()
	return s.input.Focus()
}

func (s *SearchScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.input.Focused() {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return cmd
		}
		return nil
	}

	if s.input.Focused() {
		switch keyMsg.String() {
		case "enter", "esc", "down":
			// Move focus to the results
			s.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.runSearch()
		return cmd
	}

	switch keyMsg.String() {
	case "/":
		return s.input.Focus()
	case "enter":
		if row, ok := s.list.Selected(); ok {
			return openDetailCmd(row)
		}
		return nil
	}
	return s.list.Update(msg)
}

// runSearch recomputes results for the current term
func (s *SearchScreen) runSearch() {
	term := s.input.Value()
	results := s.catalog.SearchByCategory(term)

	rows := make([]components.ImageRow, len(results))
	for i, w := range results {
		rows[i] = components.ImageRow{Title: w.Category, Subtitle: w.URI, Color: w.Color, URI: w.URI}
	}
	s.list.SetRows(rows)

	s.suggestions = nil
	if results != nil && len(results) == 0 {
		s.suggestions = s.catalog.Suggest(term)
	}
}

func (s *SearchScreen) View() string {
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	term := s.input.Value()
	switch {
	case len([]rune(term)) < catalog.MinSearchLength:
		b.WriteString(styles.DimStyle.Render(
			fmt.Sprintf("Type at least %d characters to search categories", catalog.MinSearchLength)))
		b.WriteString("\n\n")
		b.WriteString(styles.SubtitleStyle.Render("Categories: " + strings.Join(s.catalog.Categories(), ", ")))
	case s.list.ItemCount() == 0:
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("No wallpapers found for %q", term)))
		if len(s.suggestions) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.SubtitleStyle.Render("Did you mean: " + strings.Join(s.suggestions, ", ")))
		}
	default:
		b.WriteString(s.list.View())
	}
	return b.String()
}

func (s *SearchScreen) SetSize(width, height int) {
	s.input.Width = max(10, width-4)
	s.list.SetSize(width, height-2)
}

func (s *SearchScreen) Capturing() bool { return s.input.Focused() }

func (s *SearchScreen) Help() string {
	if s.input.Focused() {
		return styles.RenderHelp([2]string{"enter", "results"})
	}
	return styles.RenderHelp([2]string{"enter", "open"}, [2]string{"/", "edit search"})
}
