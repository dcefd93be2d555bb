package store

import (
	"testing"

	"github.com/mmcdole/mealbook/internal/adapter"
	"github.com/mmcdole/mealbook/internal/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		driver   adapter.StorageDriver
		wantType any
	}{
		{"bolt", adapter.StorageDriverBolt, &KVStore{}},
		{"default driver", "", &KVStore{}},
		{"sqlite", adapter.StorageDriverSQLite, &sqlite.Store{}},
		{"memory", adapter.StorageDriverMemory, &KVStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := Open(adapter.StorageConfig{Driver: tt.driver, Path: t.TempDir()}, testCatalog)
			require.NoError(t, err)
			defer kv.Close()

			assert.IsType(t, tt.wantType, kv)
			require.NoError(t, kv.Put("k", []byte("v")))
			v, ok, err := kv.Get("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v", string(v))
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(adapter.StorageConfig{Driver: "redis", Path: t.TempDir()}, testCatalog)
	assert.Error(t, err)

	_, err = Open(adapter.StorageConfig{Driver: adapter.StorageDriverBolt}, testCatalog)
	assert.Error(t, err)

	_, err = Open(adapter.StorageConfig{Driver: adapter.StorageDriverSQLite}, testCatalog)
	assert.Error(t, err)
}
