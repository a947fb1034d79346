package records

import (
	"testing"

	"github.com/mmcdole/walls/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_RoundTrip(t *testing.T) {
	f := newFixture(t)

	_, ok, err := f.store.LoadProfile()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.store.SaveProfile(domain.Profile{Name: "  Ada  ", Email: " ada@example.com "}))

	p, ok, err := f.store.LoadProfile()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.Profile{Name: "Ada", Email: "ada@example.com"}, p)
	assert.Equal(t, `{"name":"Ada","email":"ada@example.com"}`, f.kv.data[KeyProfile])
}

func TestProfile_RequiresName(t *testing.T) {
	f := newFixture(t)

	err := f.store.SaveProfile(domain.Profile{Name: "   ", Email: "x@y.z"})
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
	assert.Zero(t, f.kv.sets[KeyProfile])
}

func TestProfile_Malformed(t *testing.T) {
	f := newFixture(t)
	f.kv.data[KeyProfile] = "[]"

	p, ok, err := f.store.LoadProfile()
	assert.ErrorIs(t, err, domain.ErrMalformedData)
	assert.False(t, ok)
	assert.Equal(t, domain.DefaultProfileName, p.DisplayName())
}
