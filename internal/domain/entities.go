package domain

import (
	"strings"
	"time"
)

// Wallpaper is one image in the curated catalog.
type Wallpaper struct {
	URI      string `yaml:"uri" json:"uri"`
	Category string `yaml:"category" json:"category"`
	Color    string `yaml:"color" json:"color"` // Placeholder tint shown while the image loads
}

// LikedItem is a user-favorited image reference.
// URI is the primary key; LikedAt is unix milliseconds.
type LikedItem struct {
	URI     string `json:"uri"`
	LikedAt int64  `json:"likedAt"`
}

// LikedTime returns LikedAt as a time.Time
func (l LikedItem) LikedTime() time.Time {
	return time.UnixMilli(l.LikedAt)
}

// DownloadedRecord maps a source image to its local copy.
// OriginalURL is the primary key. LocalPath carries the file:// scheme.
type DownloadedRecord struct {
	OriginalURL  string `json:"originalUrl"`
	LocalPath    string `json:"localPath"`
	DownloadedAt int64  `json:"downloadedAt"`
}

// DownloadedTime returns DownloadedAt as a time.Time
func (d DownloadedRecord) DownloadedTime() time.Time {
	return time.UnixMilli(d.DownloadedAt)
}

// Profile is the single locally stored user profile.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DefaultProfileName is displayed when no profile has been saved yet.
const DefaultProfileName = "Jane Doe"

// DisplayName returns the name to show, falling back to DefaultProfileName
func (p Profile) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return DefaultProfileName
	}
	return p.Name
}

// Action is what to do with an image once it has been downloaded.
type Action string

const (
	ActionDownloadOnly Action = "DOWNLOAD_ONLY"
	ActionHomeScreen   Action = "HOME_SCREEN"
	ActionLockScreen   Action = "LOCK_SCREEN"
	ActionBoth         Action = "BOTH"
)

// SetsWallpaper reports whether the action applies the image as wallpaper
func (a Action) SetsWallpaper() bool {
	return a == ActionHomeScreen || a == ActionLockScreen || a == ActionBoth
}

// ScreenName returns the human readable target of a wallpaper action
func (a Action) ScreenName() string {
	switch a {
	case ActionHomeScreen:
		return "Home Screen"
	case ActionLockScreen:
		return "Lock Screen"
	case ActionBoth:
		return "Home and Lock Screens"
	default:
		return ""
	}
}

// Notice is a one-shot notification for the UI after a user-triggered action.
type Notice struct {
	Title   string
	Message string
	Err     error
}

// IsError reports whether the notice describes a failure
func (n Notice) IsError() bool {
	return n.Err != nil
}
