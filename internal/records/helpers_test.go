package records

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mmcdole/walls/internal/fsys"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// fakeKV is an in-memory domain.KeyValueStore with failure injection.
type fakeKV struct {
	data   map[string]string
	sets   map[string]int
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string), sets: make(map[string]int)}
}

func (f *fakeKV) Get(key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets[key]++
	f.data[key] = value
	return nil
}

func (f *fakeKV) Close() error { return nil }

// testClock is a settable clock.
type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

type fixture struct {
	store *Store
	kv    *fakeKV
	fs    afero.Fs
	clock *testClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := newFakeKV()
	fs := afero.NewMemMapFs()
	clock := &testClock{t: time.UnixMilli(1_700_000_000_000)}

	s := NewStore(kv, fsys.NewChecker(fs), slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = clock.Now

	return &fixture{store: s, kv: kv, fs: fs, clock: clock}
}

// seed stores v as JSON under key without counting it as a store write.
func (f *fixture) seed(t *testing.T, key string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f.kv.data[key] = string(data)
}

func (f *fixture) touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, path, []byte("img"), 0644))
}
