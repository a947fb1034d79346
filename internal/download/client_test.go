package download

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/mmcdole/walls/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const imageURL = "https://images.example.com/photo.jpg"

func setupHTTPMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func newTestClient(fs afero.Fs) *Client {
	return NewClient(fs, Options{
		RatePerSecond: 1000,
		Burst:         10,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestDownload_Success(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, imageURL,
		httpmock.NewBytesResponder(http.StatusOK, []byte("jpeg-bytes")))

	fs := afero.NewMemMapFs()
	c := newTestClient(fs)

	status, err := c.Download(context.Background(), imageURL, "/pics/wallpaper_1.jpg")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	data, err := afero.ReadFile(fs, "/pics/wallpaper_1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestDownload_NonOKStatus(t *testing.T) {
	setupHTTPMock(t)

	tests := []struct {
		name string
		code int
	}{
		{"no_content", http.StatusNoContent},
		{"redirect_not_followed", http.StatusNotModified},
		{"not_found", http.StatusNotFound},
		{"server_error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder(http.MethodGet, imageURL,
				httpmock.NewStringResponder(tt.code, "nope"))

			fs := afero.NewMemMapFs()
			c := newTestClient(fs)

			status, err := c.Download(context.Background(), imageURL, "/pics/out.jpg")
			require.Error(t, err)
			assert.Equal(t, tt.code, status)
			assert.ErrorIs(t, err, domain.ErrDownloadFailed)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.code, statusErr.Code)

			exists, err := afero.Exists(fs, "/pics/out.jpg")
			require.NoError(t, err)
			assert.False(t, exists, "no file is written for a failed download")
		})
	}
}

func TestDownload_TransportError(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, imageURL,
		httpmock.NewErrorResponder(errors.New("connection reset")))

	fs := afero.NewMemMapFs()
	c := newTestClient(fs)

	status, err := c.Download(context.Background(), imageURL, "/pics/out.jpg")
	require.Error(t, err)
	assert.Zero(t, status)
	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
}

func TestDownload_ReadOnlyDestination(t *testing.T) {
	setupHTTPMock(t)
	httpmock.RegisterResponder(http.MethodGet, imageURL,
		httpmock.NewBytesResponder(http.StatusOK, []byte("jpeg-bytes")))

	c := newTestClient(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	status, err := c.Download(context.Background(), imageURL, "/pics/out.jpg")
	require.Error(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
}

func TestDownload_CancelledContext(t *testing.T) {
	setupHTTPMock(t)

	c := NewClient(afero.NewMemMapFs(), Options{
		RatePerSecond: 0.001,
		Burst:         1,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	// Use up the single token so the next call has to wait
	c.limiter.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Download(ctx, imageURL, "/pics/out.jpg")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(nil, Options{})
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
	assert.Equal(t, DefaultBurst, c.limiter.Burst())
	assert.InDelta(t, DefaultRatePerSecond, float64(c.limiter.Limit()), 0.0001)
}
