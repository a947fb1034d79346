package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/mmcdole/walls/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketKV = []byte("kv")
)

// DBFileName is the bolt file created inside the data directory.
const DBFileName = "walls.db"

var _ domain.KeyValueStore = (*KVStore)(nil)

// KVStore implements domain.KeyValueStore using BoltDB.
// Values are stored verbatim; callers own serialization.
type KVStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string]string
}

// NewKVStore opens (or creates) the bolt file under dataDir.
// An empty dataDir gives a memory-only store.
func NewKVStore(dataDir string) (*KVStore, error) {
	if dataDir == "" {
		// Memory-only mode (no persistence)
		return &KVStore{cache: make(map[string]string)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %w", domain.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open bolt db: %w", domain.ErrStorage, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketKV)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create bucket: %w", domain.ErrStorage, err)
	}

	return &KVStore{db: db, cache: make(map[string]string)}, nil
}

// Close releases the bolt file lock.
func (s *KVStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the raw value stored under key.
func (s *KVStore) Get(key string) (string, bool, error) {
	// Check memory cache first
	s.mu.RLock()
	if v, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return v, true, nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return "", false, nil
	}

	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)
		if b == nil {
			return nil
		}
		// Bolt values are only valid for the life of the tx; string() copies.
		if v := b.Get([]byte(key)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: read %q: %w", domain.ErrStorage, key, err)
	}
	if !found {
		return "", false, nil
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	return value, true, nil
}

// Set overwrites the value stored under key.
func (s *KVStore) Set(key, value string) error {
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketKV)
			return b.Put([]byte(key), []byte(value))
		})
		if err != nil {
			return fmt.Errorf("%w: write %q: %w", domain.ErrStorage, key, err)
		}
	}

	// Cache only after a durable write so a failed Put is not served later
	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *KVStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: delete %q: %w", domain.ErrStorage, key, err)
	}
	return nil
}

// Keys returns every stored key in sorted order.
func (s *KVStore) Keys() ([]string, error) {
	seen := make(map[string]bool)

	s.mu.RLock()
	for k := range s.cache {
		seen[k] = true
	}
	s.mu.RUnlock()

	if s.db != nil {
		err := s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketKV)
			if b == nil {
				return nil
			}
			return b.ForEach(func(k, _ []byte) error {
				seen[string(k)] = true
				return nil
			})
		})
		if err != nil {
			return nil, fmt.Errorf("%w: list keys: %w", domain.ErrStorage, err)
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Reset wipes every key from the store.
func (s *KVStore) Reset() error {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketKV) != nil {
			if err := tx.DeleteBucket(bucketKV); err != nil {
				return err
			}
		}
		_, err := tx.CreateBucket(bucketKV)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: reset: %w", domain.ErrStorage, err)
	}
	return nil
}
