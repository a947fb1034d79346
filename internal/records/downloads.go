package records

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmcdole/walls/internal/domain"
	"github.com/mmcdole/walls/internal/fsys"
)

// LoadDownloadedRecords returns the downloaded records whose files still exist.
//
// Duplicates by OriginalURL collapse to the last entry, kept at the position
// of the first. Records whose file is gone are dropped and, if any were
// dropped, the surviving list is written back. On any failure the result is
// an empty slice alongside the error.
func (s *Store) LoadDownloadedRecords() ([]domain.DownloadedRecord, error) {
	empty := []domain.DownloadedRecord{}

	raw, ok, err := s.read(KeyDownloaded)
	if err != nil {
		s.logger.Error("failed to load downloaded records", "error", err)
		return empty, err
	}
	if !ok {
		return empty, nil
	}

	var records []domain.DownloadedRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		err = malformedErr(KeyDownloaded, err)
		s.logger.Error("failed to parse downloaded records", "error", err)
		return empty, err
	}

	valid := make([]domain.DownloadedRecord, 0, len(records))
	dirty := false

	for _, rec := range dedupeDownloads(records) {
		path := fsys.StripScheme(rec.LocalPath)

		exists, err := s.files.Exists(path)
		if err != nil {
			err = fmt.Errorf("check %s: %w", path, err)
			s.logger.Error("failed to check downloaded file", "error", err, "originalUrl", rec.OriginalURL)
			return empty, err
		}
		if !exists {
			s.logger.Debug("dropping downloaded record with missing file", "originalUrl", rec.OriginalURL, "path", path)
			dirty = true
			continue
		}

		rec.LocalPath = fsys.WithScheme(path)
		valid = append(valid, rec)
	}

	if dirty {
		if err := s.writeJSON(KeyDownloaded, valid); err != nil {
			s.logger.Error("failed to rewrite downloaded records", "error", err)
			return empty, err
		}
		s.logger.Info("pruned downloaded records", "kept", len(valid))
	}

	s.logger.Debug("loaded downloaded records", "count", len(valid))
	return valid, nil
}

// SaveDownloadedRecord records that originalURL now lives at localPath.
// An existing record for the same OriginalURL is replaced in place.
// File existence is not checked here; the next load reconciles.
func (s *Store) SaveDownloadedRecord(originalURL, localPath string) error {
	if originalURL == "" {
		return errors.New("original url is required")
	}

	raw, ok, err := s.read(KeyDownloaded)
	if err != nil {
		s.logger.Error("failed to save download record", "error", err, "originalUrl", originalURL)
		return err
	}

	var saved []domain.DownloadedRecord
	if ok {
		if err := json.Unmarshal([]byte(raw), &saved); err != nil {
			err = malformedErr(KeyDownloaded, err)
			s.logger.Error("failed to save download record", "error", err, "originalUrl", originalURL)
			return err
		}
	}

	record := domain.DownloadedRecord{
		OriginalURL:  originalURL,
		LocalPath:    fsys.WithScheme(localPath),
		DownloadedAt: s.nowMillis(),
	}

	replaced := false
	for i := range saved {
		if saved[i].OriginalURL == originalURL {
			saved[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		saved = append(saved, record)
	}

	if err := s.writeJSON(KeyDownloaded, saved); err != nil {
		s.logger.Error("failed to save download record", "error", err, "originalUrl", originalURL)
		return err
	}

	s.logger.Debug("saved download record", "originalUrl", originalURL, "replaced", replaced)
	return nil
}

// dedupeDownloads keeps one record per OriginalURL: the last one seen,
// placed where the key first appeared.
func dedupeDownloads(records []domain.DownloadedRecord) []domain.DownloadedRecord {
	index := make(map[string]int, len(records))
	out := make([]domain.DownloadedRecord, 0, len(records))

	for _, rec := range records {
		if i, ok := index[rec.OriginalURL]; ok {
			out[i] = rec
			continue
		}
		index[rec.OriginalURL] = len(out)
		out = append(out, rec)
	}
	return out
}
