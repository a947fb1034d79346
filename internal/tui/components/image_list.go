package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// ImageRow is one line of an ImageList.
// OriginalURL is set for rows backed by a downloaded copy.
type ImageRow struct {
	Title       string
	Subtitle    string
	Color       string
	URI         string
	OriginalURL string
}

// ImageList is a scrollable, fuzzy-filterable list of images
type ImageList struct {
	rows  []ImageRow
	empty string

	cursor     int
	offset     int
	width      int
	height     int
	maxVisible int

	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int // indices into rows
}

// NewImageList creates a list showing empty when it has no rows
func NewImageList(empty string) *ImageList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.CharLimit = 100
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle

	return &ImageList{
		empty:       empty,
		filterInput: ti,
	}
}

// SetRows replaces the rows, keeping the cursor in range
func (l *ImageList) SetRows(rows []ImageRow) {
	l.rows = rows
	if l.filterActive {
		l.applyFilter()
	}
	if l.cursor >= l.ItemCount() {
		l.cursor = max(0, l.ItemCount()-1)
	}
	l.ensureVisible()
}

func (l *ImageList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalcMaxVisible()
	l.ensureVisible()
}

// ItemCount returns the number of visible (filtered) rows
func (l *ImageList) ItemCount() int {
	if l.filteredIdx != nil {
		return len(l.filteredIdx)
	}
	return len(l.rows)
}

// Selected returns the row under the cursor
func (l *ImageList) Selected() (ImageRow, bool) {
	if l.ItemCount() == 0 {
		return ImageRow{}, false
	}
	return l.rows[l.rowIndex(l.cursor)], true
}

// StartFilter activates the filter input
func (l *ImageList) StartFilter() {
	l.filterActive = true
	l.filterInput.Focus()
	l.recalcMaxVisible()
}

// IsFilterTyping returns true if filter is active AND input is focused
func (l *ImageList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// IsFiltering returns true if filter mode is active
func (l *ImageList) IsFiltering() bool {
	return l.filterActive
}

// ClearFilter shows all rows again
func (l *ImageList) ClearFilter() {
	l.filterActive = false
	l.filteredIdx = nil
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.recalcMaxVisible()
}

func (l *ImageList) Update(msg tea.Msg) tea.Cmd {
	if l.IsFilterTyping() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				l.ClearFilter()
				return nil
			case "enter":
				// Accept filter, blur input to allow navigation
				l.filterInput.Blur()
				return nil
			case "backspace":
				if l.filterInput.Value() == "" {
					l.ClearFilter()
					return nil
				}
			}
		}

		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		l.applyFilter()
		return cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	count := l.ItemCount()
	if count == 0 {
		return nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if l.cursor < count-1 {
			l.cursor++
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
		}
	case "g", "home":
		l.cursor = 0
	case "G", "end":
		l.cursor = count - 1
	}
	l.ensureVisible()
	return nil
}

func (l *ImageList) View() string {
	var b strings.Builder

	if l.filterActive {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n")
	}

	count := l.ItemCount()
	if count == 0 {
		if l.filterActive && len(l.rows) > 0 {
			b.WriteString(styles.DimStyle.Render("no matches"))
		} else {
			b.WriteString(styles.DimStyle.Render(l.empty))
		}
		return b.String()
	}

	end := count
	if l.maxVisible > 0 {
		end = min(count, l.offset+l.maxVisible)
	}

	for i := l.offset; i < end; i++ {
		row := l.rows[l.rowIndex(i)]
		b.WriteString(l.renderRow(row, i == l.cursor))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < count {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  … %d more", count-end)))
	}

	return b.String()
}

func (l *ImageList) renderRow(row ImageRow, selected bool) string {
	textWidth := l.width - 6
	if textWidth <= 0 {
		textWidth = 60
	}

	text := row.Title
	if row.Subtitle != "" {
		text += "  " + row.Subtitle
	}
	text = styles.Truncate(text, textWidth)

	style := styles.NormalItemStyle
	if selected {
		style = styles.SelectedItemStyle
	}
	return styles.Swatch(row.Color) + style.Render(text)
}

func (l *ImageList) rowIndex(visible int) int {
	if l.filteredIdx != nil {
		return l.filteredIdx[visible]
	}
	return visible
}

func (l *ImageList) applyFilter() {
	query := l.filterInput.Value()
	if query == "" {
		l.filteredIdx = nil
		return
	}

	lowerTitles := make([]string, len(l.rows))
	for i, r := range l.rows {
		lowerTitles[i] = strings.ToLower(r.Title + " " + r.Subtitle)
	}

	matches := fuzzy.Find(strings.ToLower(query), lowerTitles)

	l.filteredIdx = make([]int, len(matches))
	for i, match := range matches {
		l.filteredIdx[i] = match.Index
	}

	// Reset cursor to first match
	l.cursor = 0
	l.offset = 0
}

func (l *ImageList) recalcMaxVisible() {
	l.maxVisible = l.height
	if l.filterActive {
		l.maxVisible--
	}
	// Leave room for the "more" line
	if l.maxVisible > 1 {
		l.maxVisible--
	}
}

func (l *ImageList) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}
