// Package download fetches remote images into local files.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/mmcdole/walls/internal/domain"
	"github.com/spf13/afero"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout       = 60 * time.Second
	DefaultRatePerSecond = 2.0
	DefaultBurst         = 2
)

var _ domain.Downloader = (*Client)(nil)

// StatusError is returned when the server answers with anything but 200.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrDownloadFailed
}

// Options configures a Client.
type Options struct {
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
	Logger        *slog.Logger
}

// Client downloads over HTTP and writes through an afero filesystem.
type Client struct {
	http    *http.Client
	fs      afero.Fs
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a download client. A nil fs uses the OS filesystem;
// zero options fall back to defaults.
func NewClient(fs afero.Fs, opts Options) *Client {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = DefaultRatePerSecond
	}
	if opts.Burst <= 0 {
		opts.Burst = DefaultBurst
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Client{
		http:    &http.Client{Timeout: opts.Timeout},
		fs:      fs,
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.Burst),
		logger:  opts.Logger,
	}
}

// Download fetches sourceURL into destPath and returns the HTTP status.
// The destination is only created for a 200 response; a partial file left
// by a failed copy is removed.
func (c *Client) Download(ctx context.Context, sourceURL, destPath string) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limit wait: %w", domain.ErrDownloadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %w", domain.ErrDownloadFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("download request failed", "url", sourceURL, "error", err)
		return 0, fmt.Errorf("%w: %w", domain.ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("download rejected", "url", sourceURL, "status", resp.StatusCode)
		return resp.StatusCode, &StatusError{Code: resp.StatusCode}
	}

	if err := c.fs.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: create directory: %w", domain.ErrDownloadFailed, err)
	}

	n, err := c.writeFile(destPath, resp.Body)
	if err != nil {
		c.logger.Error("download write failed", "path", destPath, "error", err)
		return resp.StatusCode, fmt.Errorf("%w: %w", domain.ErrDownloadFailed, err)
	}

	c.logger.Debug("downloaded", "url", sourceURL, "path", destPath, "bytes", n)
	return resp.StatusCode, nil
}

func (c *Client) writeFile(path string, body io.Reader) (int64, error) {
	out, err := c.fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}

	n, copyErr := io.Copy(out, body)
	closeErr := out.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = c.fs.Remove(path)
		return n, fmt.Errorf("write file: %w", err)
	}
	return n, nil
}
