package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/walls/internal/domain"
	"github.com/mmcdole/walls/internal/wallpaper"
)

// actionTimeout bounds a single download-and-apply run
const actionTimeout = 2 * time.Minute

// ActionRunner executes download-and-apply actions
type ActionRunner interface {
	Execute(ctx context.Context, req wallpaper.Request) domain.Notice
}

// Command factories for async operations

// LoadLikedCmd loads the liked collection
func LoadLikedCmd(store domain.RecordStore) tea.Cmd {
	return func() tea.Msg {
		items, err := store.LoadLikedItems()
		return LikedLoadedMsg{Items: items, Err: err}
	}
}

// LoadDownloadsCmd loads and reconciles downloaded records
func LoadDownloadsCmd(store domain.RecordStore) tea.Cmd {
	return func() tea.Msg {
		records, err := store.LoadDownloadedRecords()
		return DownloadsLoadedMsg{Records: records, Err: err}
	}
}

// LoadProfileCmd loads the user profile
func LoadProfileCmd(store domain.RecordStore) tea.Cmd {
	return func() tea.Msg {
		p, found, err := store.LoadProfile()
		return ProfileLoadedMsg{Profile: p, Found: found, Err: err}
	}
}

// SaveProfileCmd validates and saves the user profile
func SaveProfileCmd(store domain.RecordStore, p domain.Profile) tea.Cmd {
	return func() tea.Msg {
		return ProfileSavedMsg{Err: store.SaveProfile(p)}
	}
}

// CheckLikedCmd reports whether uri is liked
func CheckLikedCmd(store domain.RecordStore, uri string) tea.Cmd {
	return func() tea.Msg {
		liked, err := store.IsLiked(uri)
		return LikeStateMsg{URI: uri, Liked: liked, Err: err}
	}
}

// ToggleLikeCmd flips the liked state of uri
func ToggleLikeCmd(store domain.RecordStore, uri string) tea.Cmd {
	return func() tea.Msg {
		liked, err := store.ToggleLiked(uri)
		return LikeStateMsg{URI: uri, Liked: liked, Err: err}
	}
}

// ExecuteActionCmd downloads an image and applies the requested action
func ExecuteActionCmd(runner ActionRunner, req wallpaper.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		return NoticeMsg{Notice: runner.Execute(ctx, req)}
	}
}

// NoticeCmd emits a notice
func NoticeCmd(n domain.Notice) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Notice: n}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
