package main

import (
	"fmt"
	"io"
	"time"

	"github.com/mmcdole/walls/internal/catalog"
	"github.com/mmcdole/walls/internal/domain"
)

const (
	listLiked     = "liked"
	listDownloads = "downloads"
	listCatalog   = "catalog"
)

// printList writes one collection as tab separated lines. A non-empty
// query fuzzy-filters the catalog listing.
func printList(w io.Writer, kind, query string, recs domain.RecordStore, cat *catalog.Catalog) error {
	switch kind {
	case listCatalog:
		for _, wp := range cat.Filter(query) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", wp.Category, wp.Color, wp.URI)
		}
		return nil

	case listLiked:
		items, err := recs.LoadLikedItems()
		if err != nil {
			return fmt.Errorf("load liked wallpapers: %w", err)
		}
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\n", it.LikedTime().UTC().Format(time.RFC3339), it.URI)
		}
		return nil

	case listDownloads:
		records, err := recs.LoadDownloadedRecords()
		if err != nil {
			return fmt.Errorf("load downloaded wallpapers: %w", err)
		}
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\n", rec.DownloadedTime().UTC().Format(time.RFC3339), rec.OriginalURL, rec.LocalPath)
		}
		return nil

	default:
		return fmt.Errorf("unknown list %q (want %s, %s or %s)", kind, listLiked, listDownloads, listCatalog)
	}
}
