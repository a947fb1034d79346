package wallpaper

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/mmcdole/walls/internal/domain"
	"github.com/mmcdole/walls/internal/fsys"
	"github.com/mmcdole/walls/internal/records"
	"github.com/mmcdole/walls/internal/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDownloader struct {
	fs     afero.Fs
	status int
	err    error
	calls  []string
}

func (f *fakeDownloader) Download(_ context.Context, sourceURL, destPath string) (int, error) {
	f.calls = append(f.calls, sourceURL)
	if f.err != nil || f.status != http.StatusOK {
		return f.status, f.err
	}
	return f.status, afero.WriteFile(f.fs, destPath, []byte("img"), 0644)
}

type setCall struct {
	uri    string
	target domain.Action
}

type fakeSetter struct {
	err   error
	calls []setCall
}

func (f *fakeSetter) SetWallpaper(_ context.Context, localURI string, target domain.Action) error {
	f.calls = append(f.calls, setCall{uri: localURI, target: target})
	return f.err
}

type harness struct {
	svc        *Service
	downloader *fakeDownloader
	setter     *fakeSetter
	records    *records.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fs := afero.NewMemMapFs()

	kv, err := store.NewKVStore("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	recs := records.NewStore(kv, fsys.NewChecker(fs), logger)
	dl := &fakeDownloader{fs: fs, status: http.StatusOK}
	setter := &fakeSetter{}

	svc := NewService(dl, setter, recs, "/pics", logger)
	svc.now = func() time.Time { return time.UnixMilli(1234) }

	return &harness{svc: svc, downloader: dl, setter: setter, records: recs}
}

func TestExecute_DownloadOnly(t *testing.T) {
	h := newHarness(t)

	n := h.svc.Execute(context.Background(), Request{ImageURL: "https://x/a.jpg", Action: domain.ActionDownloadOnly})
	assert.False(t, n.IsError())
	assert.Equal(t, "Downloaded", n.Title)
	assert.Equal(t, "Wallpaper saved to your gallery ❤️", n.Message)
	assert.Empty(t, h.setter.calls)

	recs, err := h.records.LoadDownloadedRecords()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "https://x/a.jpg", recs[0].OriginalURL)
	assert.Equal(t, "file:///pics/wallpaper_1234.jpg", recs[0].LocalPath)
}

func TestExecute_SetActions(t *testing.T) {
	tests := []struct {
		action  domain.Action
		message string
	}{
		{domain.ActionHomeScreen, "Wallpaper set for Home Screen."},
		{domain.ActionLockScreen, "Wallpaper set for Lock Screen."},
		{domain.ActionBoth, "Wallpaper set for Home and Lock Screens."},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			h := newHarness(t)

			n := h.svc.Execute(context.Background(), Request{ImageURL: "https://x/a.jpg", Action: tt.action})
			assert.False(t, n.IsError())
			assert.Equal(t, "Success!", n.Title)
			assert.Equal(t, tt.message, n.Message)

			require.Len(t, h.setter.calls, 1)
			assert.Equal(t, setCall{uri: "file:///pics/wallpaper_1234.jpg", target: tt.action}, h.setter.calls[0])

			recs, err := h.records.LoadDownloadedRecords()
			require.NoError(t, err)
			assert.Len(t, recs, 1)
		})
	}
}

func TestExecute_UsesOriginalURL(t *testing.T) {
	h := newHarness(t)

	req := Request{
		ImageURL:    "file:///pics/wallpaper_1.jpg",
		OriginalURL: "https://x/original.jpg",
		Action:      domain.ActionDownloadOnly,
	}
	n := h.svc.Execute(context.Background(), req)
	require.False(t, n.IsError())

	assert.Equal(t, []string{"https://x/original.jpg"}, h.downloader.calls)
	recs, err := h.records.LoadDownloadedRecords()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "https://x/original.jpg", recs[0].OriginalURL)
}

func TestExecute_Failures(t *testing.T) {
	t.Run("non ok status", func(t *testing.T) {
		h := newHarness(t)
		h.downloader.status = http.StatusNotFound

		n := h.svc.Execute(context.Background(), Request{ImageURL: "https://x/a.jpg", Action: domain.ActionBoth})
		require.True(t, n.IsError())
		assert.Equal(t, "Error", n.Title)
		assert.Equal(t, "Failed to download wallpaper.", n.Message)
		assert.ErrorIs(t, n.Err, domain.ErrDownloadFailed)
		assert.Empty(t, h.setter.calls)

		recs, err := h.records.LoadDownloadedRecords()
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("transport error", func(t *testing.T) {
		h := newHarness(t)
		h.downloader.status = 0
		h.downloader.err = errors.New("dial tcp: no route")

		n := h.svc.Execute(context.Background(), Request{ImageURL: "https://x/a.jpg", Action: domain.ActionDownloadOnly})
		require.True(t, n.IsError())
		assert.Equal(t, "Something went wrong.", n.Message)
	})

	t.Run("setter error", func(t *testing.T) {
		h := newHarness(t)
		h.setter.err = errors.New("denied")

		n := h.svc.Execute(context.Background(), Request{ImageURL: "https://x/a.jpg", Action: domain.ActionHomeScreen})
		require.True(t, n.IsError())
		assert.Equal(t, "Failed to set wallpaper.", n.Message)

		recs, err := h.records.LoadDownloadedRecords()
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("unknown action", func(t *testing.T) {
		h := newHarness(t)

		n := h.svc.Execute(context.Background(), Request{ImageURL: "https://x/a.jpg", Action: "WALLPAPER_EVERYWHERE"})
		require.True(t, n.IsError())
		assert.ErrorIs(t, n.Err, ErrUnknownAction)
		assert.Empty(t, h.downloader.calls)
	})
}

func TestShareNotice(t *testing.T) {
	n := ShareNotice("https://x/a.jpg")
	assert.Equal(t, "Share", n.Title)
	assert.Equal(t, "Check out this wallpaper!\nhttps://x/a.jpg", n.Message)
}

func TestLogSetter(t *testing.T) {
	s := NewLogSetter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, s.SetWallpaper(context.Background(), "file:///pics/a.jpg", domain.ActionBoth))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.SetWallpaper(ctx, "file:///pics/a.jpg", domain.ActionBoth), context.Canceled)
}
