package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmcdole/mealbook/internal/adapter"
	"github.com/mmcdole/mealbook/internal/domain"
	"github.com/mmcdole/mealbook/internal/store/sqlite"
)

// Open creates the key-value store selected by the storage configuration.
func Open(cfg adapter.StorageConfig, catalogURL string) (domain.KeyValueStore, error) {
	dir, err := adapter.ExpandPath(cfg.Path)
	if err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case adapter.StorageDriverBolt, "":
		if dir == "" {
			return nil, fmt.Errorf("storage path is required for the %s driver", adapter.StorageDriverBolt)
		}
		return NewKVStore(dir, catalogURL)

	case adapter.StorageDriverSQLite:
		if dir == "" {
			return nil, fmt.Errorf("storage path is required for the %s driver", adapter.StorageDriverSQLite)
		}
		if catalogURL != "" {
			dir = filepath.Join(dir, hashCatalogURL(catalogURL))
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return sqlite.New(filepath.Join(dir, "favorites.sqlite"))

	case adapter.StorageDriverMemory:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
