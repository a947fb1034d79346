// Package wallpaper runs the download-and-apply actions offered on the
// detail view and turns their outcome into user notices.
package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/walls/internal/domain"
	"github.com/mmcdole/walls/internal/fsys"
)

// Notice texts
const (
	titleSuccess    = "Success!"
	titleDownloaded = "Downloaded"
	titleError      = "Error"
	titleShare      = "Share"

	msgDownloaded     = "Wallpaper saved to your gallery ❤️"
	msgDownloadFailed = "Failed to download wallpaper."
	msgSetFailed      = "Failed to set wallpaper."
	msgUnexpected     = "Something went wrong."
)

// ErrUnknownAction is returned for an action outside the known set.
var ErrUnknownAction = errors.New("unknown wallpaper action")

// Request identifies the image being acted on. OriginalURL is set when the
// image is being viewed from a downloaded copy.
type Request struct {
	ImageURL    string
	OriginalURL string
	Action      domain.Action
}

// Identifier is the key the image is stored under: the original URL when
// known, else the image URL.
func (r Request) Identifier() string {
	if r.OriginalURL != "" {
		return r.OriginalURL
	}
	return r.ImageURL
}

// Service downloads images and applies them.
type Service struct {
	downloader domain.Downloader
	setter     domain.WallpaperSetter
	records    domain.RecordStore
	dir        string
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a wallpaper service writing into dir.
func NewService(downloader domain.Downloader, setter domain.WallpaperSetter, records domain.RecordStore, dir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		downloader: downloader,
		setter:     setter,
		records:    records,
		dir:        dir,
		logger:     logger,
		now:        time.Now,
	}
}

// Execute downloads the requested image and performs the action.
// It never fails outright; the returned notice carries any error.
func (s *Service) Execute(ctx context.Context, req Request) domain.Notice {
	actionID := uuid.NewString()
	logger := s.logger.With("action_id", actionID, "action", string(req.Action))

	switch req.Action {
	case domain.ActionDownloadOnly, domain.ActionHomeScreen, domain.ActionLockScreen, domain.ActionBoth:
	default:
		logger.Error("rejected wallpaper action", "error", ErrUnknownAction)
		return errorNotice(msgUnexpected, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action))
	}

	identifier := req.Identifier()
	path := s.destination()

	logger.Info("starting download", "url", identifier, "path", path)
	status, err := s.downloader.Download(ctx, identifier, path)
	switch {
	case status != 0 && status != http.StatusOK:
		if err == nil {
			err = fmt.Errorf("%w: status %d", domain.ErrDownloadFailed, status)
		}
		logger.Warn("download rejected", "url", identifier, "status", status)
		return errorNotice(msgDownloadFailed, err)
	case err != nil:
		// No response, or the file could not be written
		logger.Error("download failed", "url", identifier, "status", status, "error", err)
		return errorNotice(msgUnexpected, err)
	case status != http.StatusOK:
		err = fmt.Errorf("%w: no status", domain.ErrDownloadFailed)
		logger.Error("download failed", "url", identifier, "error", err)
		return errorNotice(msgUnexpected, err)
	}

	if req.Action.SetsWallpaper() {
		if err := s.setter.SetWallpaper(ctx, fsys.WithScheme(path), req.Action); err != nil {
			logger.Error("set wallpaper failed", "path", path, "error", err)
			return errorNotice(msgSetFailed, err)
		}
		s.saveRecord(logger, identifier, path)
		return domain.Notice{
			Title:   titleSuccess,
			Message: fmt.Sprintf("Wallpaper set for %s.", req.Action.ScreenName()),
		}
	}

	s.saveRecord(logger, identifier, path)
	return domain.Notice{Title: titleDownloaded, Message: msgDownloaded}
}

// ShareNotice returns the share text for an image.
func ShareNotice(imageURL string) domain.Notice {
	return domain.Notice{
		Title:   titleShare,
		Message: "Check out this wallpaper!\n" + imageURL,
	}
}

// saveRecord stores the downloaded record. A failure here does not undo
// the download, so it is logged and otherwise ignored.
func (s *Service) saveRecord(logger *slog.Logger, identifier, path string) {
	if err := s.records.SaveDownloadedRecord(identifier, path); err != nil {
		logger.Error("failed to save download record", "url", identifier, "error", err)
		return
	}
	logger.Debug("download recorded", "url", identifier)
}

func (s *Service) destination() string {
	return filepath.Join(s.dir, fmt.Sprintf("wallpaper_%d.jpg", s.now().UnixMilli()))
}

func errorNotice(msg string, err error) domain.Notice {
	return domain.Notice{Title: titleError, Message: msg, Err: err}
}
