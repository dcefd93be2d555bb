package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetPut(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	// Initially missing
	_, ok, err := store.Get("FAVORITE_MEALS")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put("FAVORITE_MEALS", []byte(`["52772","52773"]`)))

	value, ok, err := store.Get("FAVORITE_MEALS")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["52772","52773"]`, string(value))

	// Overwrite replaces the whole value
	require.NoError(t, store.Put("FAVORITE_MEALS", []byte(`["52773"]`)))
	value, _, err = store.Get("FAVORITE_MEALS")
	require.NoError(t, err)
	assert.Equal(t, `["52773"]`, string(value))
}

func TestStore_EmptyValue(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("k", nil))
	value, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestStore_Delete(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("k", []byte("v")))
	require.NoError(t, store.Delete("k"))

	_, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Delete("missing"))
}

func TestStore_PersistsToFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "favorites.sqlite")

	store, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Put("k", []byte("persisted")))
	require.NoError(t, store.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", string(value))
}

func TestStore_Closed(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.NoError(t, store.Close())

	_, _, err = store.Get("k")
	assert.ErrorIs(t, err, domain.ErrStoreClosed)
	assert.ErrorIs(t, store.Put("k", []byte("v")), domain.ErrStoreClosed)
	assert.ErrorIs(t, store.Delete("k"), domain.ErrStoreClosed)
}
