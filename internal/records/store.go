// Package records keeps the locally persisted collections: liked images,
// downloaded files and the user profile.
//
// Every write replaces the whole value stored under a key. Two callers
// doing read-modify-write on the same key at the same time can lose an
// update; callers are expected to issue operations sequentially.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/walls/internal/domain"
)

// Persistence keys
const (
	KeyLiked      = "likedWallpapers"
	KeyDownloaded = "downloadedWallpapersData"
	KeyProfile    = "user_profile_v1"
)

var _ domain.RecordStore = (*Store)(nil)

// Store implements domain.RecordStore on top of a key-value store and a
// filesystem existence check.
type Store struct {
	kv     domain.KeyValueStore
	files  domain.FileChecker
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a record store.
func NewStore(kv domain.KeyValueStore, files domain.FileChecker, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:     kv,
		files:  files,
		logger: logger,
		now:    time.Now,
	}
}

// read returns the raw value under key; absent is reported as ok=false.
func (s *Store) read(key string) (string, bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return "", false, storageErr("read", key, err)
	}
	return raw, ok, nil
}

// writeJSON serializes v and overwrites key.
func (s *Store) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		return storageErr("write", key, err)
	}
	return nil
}

func (s *Store) nowMillis() int64 {
	return s.now().UnixMilli()
}

func storageErr(op, key string, err error) error {
	if errors.Is(err, domain.ErrStorage) {
		return fmt.Errorf("%s %s: %w", op, key, err)
	}
	return fmt.Errorf("%w: %s %s: %w", domain.ErrStorage, op, key, err)
}

func malformedErr(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrMalformedData, key, err)
}
