package records

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mmcdole/walls/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persistedDownloads(t *testing.T, f *fixture) []domain.DownloadedRecord {
	t.Helper()
	var out []domain.DownloadedRecord
	require.NoError(t, json.Unmarshal([]byte(f.kv.data[KeyDownloaded]), &out))
	return out
}

func TestLoadDownloadedRecords_Absent(t *testing.T) {
	f := newFixture(t)

	got, err := f.store.LoadDownloadedRecords()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, f.kv.sets[KeyDownloaded])
}

func TestLoadDownloadedRecords_DedupKeepsLast(t *testing.T) {
	f := newFixture(t)
	f.touch(t, "/pics/a1.jpg")
	f.touch(t, "/pics/a2.jpg")
	f.touch(t, "/pics/b.jpg")

	f.seed(t, KeyDownloaded, []domain.DownloadedRecord{
		{OriginalURL: "https://x/a", LocalPath: "file:///pics/a1.jpg", DownloadedAt: 1},
		{OriginalURL: "https://x/b", LocalPath: "file:///pics/b.jpg", DownloadedAt: 2},
		{OriginalURL: "https://x/a", LocalPath: "file:///pics/a2.jpg", DownloadedAt: 3},
	})

	got, err := f.store.LoadDownloadedRecords()
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "https://x/a", got[0].OriginalURL)
	assert.Equal(t, "file:///pics/a2.jpg", got[0].LocalPath)
	assert.Equal(t, int64(3), got[0].DownloadedAt)
	assert.Equal(t, "https://x/b", got[1].OriginalURL)

	// Nothing was missing, so the store is not rewritten
	assert.Zero(t, f.kv.sets[KeyDownloaded])
}

func TestLoadDownloadedRecords_PrunesMissingFiles(t *testing.T) {
	f := newFixture(t)
	f.touch(t, "/pics/kept.jpg")

	f.seed(t, KeyDownloaded, []domain.DownloadedRecord{
		{OriginalURL: "https://x/gone", LocalPath: "file:///pics/gone.jpg", DownloadedAt: 1},
		{OriginalURL: "https://x/kept", LocalPath: "/pics/kept.jpg", DownloadedAt: 2},
	})

	got, err := f.store.LoadDownloadedRecords()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://x/kept", got[0].OriginalURL)
	assert.Equal(t, "file:///pics/kept.jpg", got[0].LocalPath, "canonical scheme is re-added")

	assert.Equal(t, 1, f.kv.sets[KeyDownloaded])
	persisted := persistedDownloads(t, f)
	require.Len(t, persisted, 1)
	assert.Equal(t, "https://x/kept", persisted[0].OriginalURL)

	// Second load has nothing left to prune
	_, err = f.store.LoadDownloadedRecords()
	require.NoError(t, err)
	assert.Equal(t, 1, f.kv.sets[KeyDownloaded])
}

func TestLoadDownloadedRecords_AllMissingWritesEmptyList(t *testing.T) {
	f := newFixture(t)
	f.seed(t, KeyDownloaded, []domain.DownloadedRecord{
		{OriginalURL: "https://x/gone", LocalPath: "file:///pics/gone.jpg"},
	})

	got, err := f.store.LoadDownloadedRecords()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "[]", f.kv.data[KeyDownloaded])
}

func TestLoadDownloadedRecords_Malformed(t *testing.T) {
	f := newFixture(t)
	f.kv.data[KeyDownloaded] = "{not json"

	got, err := f.store.LoadDownloadedRecords()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedData))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadDownloadedRecords_StorageFailures(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		f := newFixture(t)
		f.kv.getErr = errors.New("disk on fire")

		got, err := f.store.LoadDownloadedRecords()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.Empty(t, got)
	})

	t.Run("rewrite", func(t *testing.T) {
		f := newFixture(t)
		f.seed(t, KeyDownloaded, []domain.DownloadedRecord{
			{OriginalURL: "https://x/gone", LocalPath: "file:///pics/gone.jpg"},
		})
		f.kv.setErr = errors.New("read-only")

		got, err := f.store.LoadDownloadedRecords()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.Empty(t, got)
	})
}

func TestSaveDownloadedRecord_Idempotent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.store.SaveDownloadedRecord("https://x/a", "/pics/a.jpg"))
	f.clock.t = f.clock.t.Add(1000)
	require.NoError(t, f.store.SaveDownloadedRecord("https://x/a", "/pics/a.jpg"))

	persisted := persistedDownloads(t, f)
	require.Len(t, persisted, 1)
	assert.Equal(t, "file:///pics/a.jpg", persisted[0].LocalPath)
	assert.Equal(t, f.clock.t.UnixMilli(), persisted[0].DownloadedAt)
}

func TestSaveDownloadedRecord_ReplacesInPlace(t *testing.T) {
	f := newFixture(t)
	f.seed(t, KeyDownloaded, []domain.DownloadedRecord{
		{OriginalURL: "https://x/a", LocalPath: "file:///pics/a.jpg", DownloadedAt: 1},
		{OriginalURL: "https://x/b", LocalPath: "file:///pics/b.jpg", DownloadedAt: 2},
	})

	require.NoError(t, f.store.SaveDownloadedRecord("https://x/a", "file:///pics/a-new.jpg"))
	require.NoError(t, f.store.SaveDownloadedRecord("https://x/c", "/pics/c.jpg"))

	persisted := persistedDownloads(t, f)
	require.Len(t, persisted, 3)
	assert.Equal(t, "https://x/a", persisted[0].OriginalURL)
	assert.Equal(t, "file:///pics/a-new.jpg", persisted[0].LocalPath)
	assert.Equal(t, "https://x/b", persisted[1].OriginalURL)
	assert.Equal(t, "https://x/c", persisted[2].OriginalURL)
}

func TestSaveDownloadedRecord_Errors(t *testing.T) {
	t.Run("empty url", func(t *testing.T) {
		f := newFixture(t)
		assert.Error(t, f.store.SaveDownloadedRecord("", "/pics/a.jpg"))
	})

	t.Run("malformed existing", func(t *testing.T) {
		f := newFixture(t)
		f.kv.data[KeyDownloaded] = "nope"
		err := f.store.SaveDownloadedRecord("https://x/a", "/pics/a.jpg")
		assert.ErrorIs(t, err, domain.ErrMalformedData)
		assert.Equal(t, "nope", f.kv.data[KeyDownloaded], "malformed data is left untouched")
	})

	t.Run("write", func(t *testing.T) {
		f := newFixture(t)
		f.kv.setErr = errors.New("full")
		err := f.store.SaveDownloadedRecord("https://x/a", "/pics/a.jpg")
		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}

func TestDedupeDownloads(t *testing.T) {
	in := []domain.DownloadedRecord{
		{OriginalURL: "a", DownloadedAt: 1},
		{OriginalURL: "b", DownloadedAt: 2},
		{OriginalURL: "a", DownloadedAt: 3},
		{OriginalURL: "c", DownloadedAt: 4},
		{OriginalURL: "b", DownloadedAt: 5},
	}

	got := dedupeDownloads(in)
	require.Len(t, got, 3)
	assert.Equal(t, domain.DownloadedRecord{OriginalURL: "a", DownloadedAt: 3}, got[0])
	assert.Equal(t, domain.DownloadedRecord{OriginalURL: "b", DownloadedAt: 5}, got[1])
	assert.Equal(t, domain.DownloadedRecord{OriginalURL: "c", DownloadedAt: 4}, got[2])
}
