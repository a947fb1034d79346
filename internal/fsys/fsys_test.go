package fsys

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Exists(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/pics/wallpaper_1.jpg", []byte("jpg"), 0644))

	c := NewChecker(fs)

	ok, err := c.Exists("/pics/wallpaper_1.jpg")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Exists("/pics/missing.jpg")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSchemeHelpers(t *testing.T) {
	tests := []struct {
		in       string
		stripped string
		schemed  string
	}{
		{"/a/b.jpg", "/a/b.jpg", "file:///a/b.jpg"},
		{"file:///a/b.jpg", "/a/b.jpg", "file:///a/b.jpg"},
		{"file://file:///a/b.jpg", "/a/b.jpg", "file:///a/b.jpg"},
		{"", "", "file://"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.stripped, StripScheme(tt.in))
			assert.Equal(t, tt.schemed, WithScheme(tt.in))
		})
	}
}
