package main

import (
	"fmt"
	"io"

	"github.com/mmcdole/walls/internal/records"
)

const resetAll = "all"

// keyStore is the maintenance surface of the key-value store
type keyStore interface {
	Keys() ([]string, error)
	Delete(key string) error
	Reset() error
}

var resetKeys = map[string]string{
	listLiked:     records.KeyLiked,
	listDownloads: records.KeyDownloaded,
	"profile":     records.KeyProfile,
}

// resetRecords forgets one stored collection, or everything for "all"
func resetRecords(w io.Writer, what string, kv keyStore) error {
	if what == resetAll {
		keys, err := kv.Keys()
		if err != nil {
			return err
		}
		if err := kv.Reset(); err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintf(w, "removed %s\n", k)
		}
		return nil
	}

	key, ok := resetKeys[what]
	if !ok {
		return fmt.Errorf("unknown collection %q (want %s, %s, %s or profile)", what, resetAll, listLiked, listDownloads)
	}
	if err := kv.Delete(key); err != nil {
		return err
	}
	fmt.Fprintf(w, "removed %s\n", key)
	return nil
}
