package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/domain"
	"github.com/mmcdole/walls/internal/tui/styles"
	"github.com/mmcdole/walls/internal/wallpaper"
)

// DetailView shows one image with like, share and download actions
type DetailView struct {
	store   domain.RecordStore
	actions ActionRunner
	target  DetailTarget

	liked   bool
	busy    bool
	spinner spinner.Model
}

func NewDetailView(store domain.RecordStore, actions ActionRunner, target DetailTarget) *DetailView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	return &DetailView{
		store:   store,
		actions: actions,
		target:  target,
		spinner: sp,
	}
}

// Activate loads the liked state of the image
func (d *DetailView) Activate() tea.Cmd {
	return CheckLikedCmd(d.store, d.target.Identifier())
}

// Busy reports whether a download is running
func (d *DetailView) Busy() bool { return d.busy }

func (d *DetailView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case LikeStateMsg:
		if msg.URI != d.target.Identifier() {
			return nil
		}
		if msg.Err != nil {
			// Keep the last known state
			return nil
		}
		d.liked = msg.Liked
		return nil

	case NoticeMsg:
		d.busy = false
		return nil

	case spinner.TickMsg:
		if !d.busy {
			return nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if d.busy {
			return nil
		}
		switch {
		case key.Matches(msg, Keys.Back):
			return func() tea.Msg { return CloseDetailMsg{} }
		case key.Matches(msg, Keys.Like):
			return ToggleLikeCmd(d.store, d.target.Identifier())
		case key.Matches(msg, Keys.Share):
			return NoticeCmd(wallpaper.ShareNotice(d.target.ImageURL))
		case key.Matches(msg, Keys.DownloadOnly):
			return d.run(domain.ActionDownloadOnly)
		case key.Matches(msg, Keys.SetHome):
			return d.run(domain.ActionHomeScreen)
		case key.Matches(msg, Keys.SetLock):
			return d.run(domain.ActionLockScreen)
		case key.Matches(msg, Keys.SetBoth):
			return d.run(domain.ActionBoth)
		}
	}
	return nil
}

func (d *DetailView) run(action domain.Action) tea.Cmd {
	d.busy = true
	req := wallpaper.Request{
		ImageURL:    d.target.ImageURL,
		OriginalURL: d.target.OriginalURL,
		Action:      action,
	}
	return tea.Batch(d.spinner.Tick, ExecuteActionCmd(d.actions, req))
}

func (d *DetailView) View() string {
	var b strings.Builder

	heart := styles.DimStyle.Render("♡ not liked")
	if d.liked {
		heart = styles.LikedStyle.Render("♥ liked")
	}

	title := d.target.Label
	if title == "" {
		title = "Wallpaper"
	}

	b.WriteString(styles.Swatch(d.target.Color) + " " + styles.TitleStyle.Render(title) + "  " + heart)
	b.WriteString("\n\n")
	b.WriteString(styles.SubtitleStyle.Render(d.target.ImageURL))
	if d.target.OriginalURL != "" && d.target.OriginalURL != d.target.ImageURL {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("from " + d.target.OriginalURL))
	}
	b.WriteString("\n\n")

	if d.busy {
		b.WriteString(d.spinner.View() + " " + styles.AccentStyle.Render("Downloading..."))
		return b.String()
	}

	b.WriteString(styles.RenderHelp(
		[2]string{"d", "download"},
		[2]string{"h", "set home screen"},
		[2]string{"L", "set lock screen"},
		[2]string{"b", "set both"},
	))
	return b.String()
}

func (d *DetailView) Help() string {
	return styles.RenderHelp([2]string{"l", "like"}, [2]string{"s", "share"}, [2]string{"esc", "back"})
}
