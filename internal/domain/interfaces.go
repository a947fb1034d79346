package domain

import "context"

// KeyValueStore is the persistence collaborator.
// Values are opaque serialized strings; Get reports absence with ok=false.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// FileChecker answers whether a path exists on the local filesystem.
type FileChecker interface {
	Exists(path string) (bool, error)
}

// Downloader fetches a source identifier into a destination path.
// It returns the transport status code; only 200 counts as success.
type Downloader interface {
	Download(ctx context.Context, sourceURL, destPath string) (int, error)
}

// WallpaperSetter applies a local image as the device wallpaper.
type WallpaperSetter interface {
	SetWallpaper(ctx context.Context, localURI string, target Action) error
}
