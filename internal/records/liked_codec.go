package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmcdole/walls/internal/domain"
)

// likedShape tags which persisted layout a liked list was decoded from.
type likedShape int

const (
	likedShapeCurrent likedShape = iota // [{"uri":..,"likedAt":..}]
	likedShapeLegacy                    // ["uri", "uri", ...]
)

// likedList is the decoded likedWallpapers value.
// Items is set for the current shape, URIs for the legacy one.
type likedList struct {
	Shape likedShape
	Items []domain.LikedItem
	URIs  []string
}

// decodeLikedList decodes a raw likedWallpapers value. The shape is decided
// by the first element: a JSON string marks the whole list as legacy.
func decodeLikedList(raw string) (likedList, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return likedList{}, err
	}
	if len(elems) == 0 {
		return likedList{Shape: likedShapeCurrent, Items: []domain.LikedItem{}}, nil
	}

	if isJSONString(elems[0]) {
		uris := make([]string, len(elems))
		for i, e := range elems {
			if err := json.Unmarshal(e, &uris[i]); err != nil {
				return likedList{}, fmt.Errorf("legacy element %d: %w", i, err)
			}
		}
		return likedList{Shape: likedShapeLegacy, URIs: uris}, nil
	}

	items := make([]domain.LikedItem, len(elems))
	for i, e := range elems {
		if err := json.Unmarshal(e, &items[i]); err != nil {
			return likedList{}, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return likedList{Shape: likedShapeCurrent, Items: items}, nil
}

// resolve returns the list in the current shape. migrated is true when the
// list was legacy and had to be converted.
func (l likedList) resolve(at time.Time) (items []domain.LikedItem, migrated bool) {
	if l.Shape == likedShapeLegacy {
		return migrateLegacyLiked(l.URIs, at), true
	}
	return l.Items, false
}

// migrateLegacyLiked wraps bare URIs into liked items. The original like
// times were never stored, so every item gets at.
func migrateLegacyLiked(uris []string, at time.Time) []domain.LikedItem {
	ms := at.UnixMilli()
	items := make([]domain.LikedItem, len(uris))
	for i, uri := range uris {
		items[i] = domain.LikedItem{URI: uri, LikedAt: ms}
	}
	return items
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}
