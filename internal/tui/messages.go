package tui

import (
	"github.com/mmcdole/walls/internal/domain"
)

// Message types for the TUI

// LikedLoadedMsg carries the liked collection
type LikedLoadedMsg struct {
	Items []domain.LikedItem
	Err   error
}

// DownloadsLoadedMsg carries the reconciled downloaded records
type DownloadsLoadedMsg struct {
	Records []domain.DownloadedRecord
	Err     error
}

// ProfileLoadedMsg carries the stored profile; Found is false when none was saved
type ProfileLoadedMsg struct {
	Profile domain.Profile
	Found   bool
	Err     error
}

// ProfileSavedMsg signals a profile save attempt finished
type ProfileSavedMsg struct {
	Err error
}

// LikeStateMsg reports whether an image is liked
type LikeStateMsg struct {
	URI   string
	Liked bool
	Err   error
}

// NoticeMsg shows a one-shot notice in the status bar
type NoticeMsg struct {
	Notice domain.Notice
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct {
	Seq int
}

// OpenDetailMsg opens the detail view for an image
type OpenDetailMsg struct {
	Target DetailTarget
}

// CloseDetailMsg returns from the detail view to the active tab
type CloseDetailMsg struct{}
