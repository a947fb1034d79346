package records

import (
	"cmp"
	"errors"
	"slices"

	"github.com/mmcdole/walls/internal/domain"
)

// LoadLikedItems returns liked items, most recently liked first.
// A legacy list is migrated and persisted before returning. On failure the
// result is an empty slice alongside the error.
func (s *Store) LoadLikedItems() ([]domain.LikedItem, error) {
	empty := []domain.LikedItem{}

	items, err := s.readLiked()
	if err != nil {
		s.logger.Error("error loading liked wallpapers", "error", err)
		return empty, err
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.LikedItem) int {
		return cmp.Compare(b.LikedAt, a.LikedAt)
	})

	s.logger.Debug("loaded liked wallpapers", "count", len(sorted))
	return sorted, nil
}

// ToggleLiked likes uri if it is not liked, otherwise unlikes it.
// It returns the new liked state. On failure it returns the previous
// state when known.
func (s *Store) ToggleLiked(uri string) (bool, error) {
	if uri == "" {
		return false, errors.New("uri is required")
	}

	items, err := s.readLiked()
	if err != nil {
		s.logger.Error("like error", "error", err, "uri", uri)
		return false, err
	}

	idx := slices.IndexFunc(items, func(it domain.LikedItem) bool { return it.URI == uri })
	wasLiked := idx >= 0

	var next []domain.LikedItem
	if wasLiked {
		next = slices.DeleteFunc(slices.Clone(items), func(it domain.LikedItem) bool { return it.URI == uri })
	} else {
		next = append(slices.Clone(items), domain.LikedItem{URI: uri, LikedAt: s.nowMillis()})
	}

	if err := s.writeJSON(KeyLiked, next); err != nil {
		s.logger.Error("like error", "error", err, "uri", uri)
		return wasLiked, err
	}

	s.logger.Debug("toggled like", "uri", uri, "liked", !wasLiked)
	return !wasLiked, nil
}

// IsLiked reports whether uri is in the liked collection.
func (s *Store) IsLiked(uri string) (bool, error) {
	items, err := s.readLiked()
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(items, func(it domain.LikedItem) bool { return it.URI == uri }), nil
}

// readLiked decodes the stored liked list, migrating and persisting a
// legacy list on the way.
func (s *Store) readLiked() ([]domain.LikedItem, error) {
	raw, ok, err := s.read(KeyLiked)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.LikedItem{}, nil
	}

	list, err := decodeLikedList(raw)
	if err != nil {
		return nil, malformedErr(KeyLiked, err)
	}

	items, migrated := list.resolve(s.now())
	if migrated {
		s.logger.Warn("liked storage format detected as legacy, migrating", "count", len(items))
		if err := s.writeJSON(KeyLiked, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}
