// Package fsys wraps filesystem access behind afero so tests can run
// against an in-memory filesystem.
package fsys

import (
	"strings"

	"github.com/mmcdole/walls/internal/domain"
	"github.com/spf13/afero"
)

// FileScheme is the URI prefix stored on downloaded record paths.
const FileScheme = "file://"

var _ domain.FileChecker = (*Checker)(nil)

// Checker implements domain.FileChecker on an afero filesystem.
type Checker struct {
	fs afero.Fs
}

// NewChecker creates a Checker. A nil fs uses the OS filesystem.
func NewChecker(fs afero.Fs) *Checker {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Checker{fs: fs}
}

// Exists reports whether path exists
func (c *Checker) Exists(path string) (bool, error) {
	return afero.Exists(c.fs, path)
}

// StripScheme removes every leading file:// prefix from p.
func StripScheme(p string) string {
	for strings.HasPrefix(p, FileScheme) {
		p = strings.TrimPrefix(p, FileScheme)
	}
	return p
}

// WithScheme returns p with exactly one file:// prefix.
func WithScheme(p string) string {
	return FileScheme + StripScheme(p)
}
