package wallpaper

import (
	"context"
	"log/slog"

	"github.com/mmcdole/walls/internal/domain"
)

var _ domain.WallpaperSetter = (*LogSetter)(nil)

// LogSetter stands in for a platform wallpaper API. It only logs.
type LogSetter struct {
	logger *slog.Logger
}

func NewLogSetter(logger *slog.Logger) *LogSetter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSetter{logger: logger}
}

func (l *LogSetter) SetWallpaper(ctx context.Context, localURI string, target domain.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.logger.Info("setting wallpaper", "path", localURI, "screen", string(target))
	return nil
}
