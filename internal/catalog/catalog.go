// Package catalog holds the curated wallpaper collection and the search
// operations over it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mmcdole/walls/internal/domain"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// MinSearchLength is the shortest term SearchByCategory acts on.
const MinSearchLength = 3

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrEmptyCatalog is returned when a catalog file holds no wallpapers.
var ErrEmptyCatalog = errors.New("catalog has no wallpapers")

type catalogFile struct {
	Wallpapers []domain.Wallpaper `yaml:"wallpapers"`
}

// Catalog is an immutable, ordered wallpaper collection.
type Catalog struct {
	items []domain.Wallpaper
	index *filterIndex
}

// filterIndex implements sahilm/fuzzy.Source over "category uri" strings
type filterIndex struct {
	lower []string
}

func (idx *filterIndex) String(i int) string { return idx.lower[i] }
func (idx *filterIndex) Len() int            { return len(idx.lower) }

// New builds a catalog from items, keeping their order.
func New(items []domain.Wallpaper) *Catalog {
	items = slices.Clone(items)
	idx := &filterIndex{lower: make([]string, len(items))}
	for i, w := range items {
		idx.lower[i] = strings.ToLower(w.Category + " " + w.URI)
	}
	return &Catalog{items: items, index: idx}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: catalog: %w", domain.ErrMalformedData, err)
	}
	if len(f.Wallpapers) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, w := range f.Wallpapers {
		if strings.TrimSpace(w.URI) == "" {
			return nil, fmt.Errorf("%w: catalog entry %d has no uri", domain.ErrMalformedData, i)
		}
	}
	return New(f.Wallpapers), nil
}

// Load reads a catalog file from fs. An empty path returns the built-in
// catalog.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// All returns every wallpaper in catalog order.
func (c *Catalog) All() []domain.Wallpaper {
	return slices.Clone(c.items)
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup returns the wallpaper with the given uri.
func (c *Catalog) Lookup(uri string) (domain.Wallpaper, error) {
	i := slices.IndexFunc(c.items, func(w domain.Wallpaper) bool { return w.URI == uri })
	if i < 0 {
		return domain.Wallpaper{}, fmt.Errorf("%w: %s", domain.ErrNotFound, uri)
	}
	return c.items[i], nil
}

// SearchByCategory returns wallpapers whose category contains term,
// ignoring case. Terms shorter than MinSearchLength return nil.
func (c *Catalog) SearchByCategory(term string) []domain.Wallpaper {
	if utf8.RuneCountInString(term) < MinSearchLength {
		return nil
	}
	lower := strings.ToLower(term)

	results := []domain.Wallpaper{}
	for _, w := range c.items {
		if strings.Contains(strings.ToLower(w.Category), lower) {
			results = append(results, w)
		}
	}
	return results
}

// Categories returns distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, w := range c.items {
		if !seen[w.Category] {
			seen[w.Category] = true
			out = append(out, w.Category)
		}
	}
	return out
}

// Suggest ranks categories that fuzzily match term, closest first.
// Used when a search comes back empty.
func (c *Catalog) Suggest(term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	categories := c.Categories()
	ranks := lfuzzy.RankFindNormalizedFold(term, categories)
	if len(ranks) == 0 {
		// Fall back to edit distance for typos the subsequence match misses
		for _, cat := range categories {
			d := lfuzzy.LevenshteinDistance(strings.ToLower(term), strings.ToLower(cat))
			if d <= 2 {
				ranks = append(ranks, lfuzzy.Rank{Source: term, Target: cat, Distance: d})
			}
		}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}

// Filter fuzzy-matches query against category and uri, best match first.
// An empty query returns the whole catalog.
func (c *Catalog) Filter(query string) []domain.Wallpaper {
	if query == "" {
		return c.All()
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), c.index)
	out := make([]domain.Wallpaper, len(matches))
	for i, m := range matches {
		out[i] = c.items[m.Index]
	}
	return out
}
