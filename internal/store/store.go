package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/mealbook/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketKV = []byte("kv")
)

// KVStore implements domain.KeyValueStore using BoltDB.
// Values are whole blobs; a memory map fronts the database for hot-path reads.
type KVStore struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects memory cache and closed
	closed bool

	// In-memory cache (promoted on access)
	cache map[string][]byte
}

// NewKVStore opens the BoltDB file for the given catalog under baseDir.
// Favorites are partitioned by catalog because ids are catalog-specific.
// An empty baseDir yields a memory-only store.
func NewKVStore(baseDir, catalogURL string) (*KVStore, error) {
	if baseDir == "" {
		// Memory-only mode (no persistence)
		return NewMemoryStore(), nil
	}

	dir := baseDir
	if catalogURL != "" {
		dir = filepath.Join(baseDir, hashCatalogURL(catalogURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dir, "favorites.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketKV)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &KVStore{db: db, cache: make(map[string][]byte)}, nil
}

// NewMemoryStore returns a store that keeps values only for the process lifetime
func NewMemoryStore() *KVStore {
	return &KVStore{cache: make(map[string][]byte)}
}

func hashCatalogURL(catalogURL string) string {
	normalized := strings.TrimRight(strings.ToLower(catalogURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

// Get returns a copy of the value stored under key
func (s *KVStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, false, domain.ErrStoreClosed
	}
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return clone(data), true, nil
	}
	s.mu.RUnlock()

	// Miss: read and promote under the write lock so a concurrent Put or
	// Delete cannot be overwritten by the older value.
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, false, domain.ErrStoreClosed
	}
	if data, ok := s.cache[key]; ok {
		return clone(data), true, nil
	}
	if s.db == nil {
		return nil, false, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = clone(v) // bolt memory is only valid inside the tx
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if data == nil {
		return nil, false, nil
	}

	s.cache[key] = data
	return clone(data), true, nil
}

// Put replaces the value stored under key
func (s *KVStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrStoreClosed
	}

	data := clone(value)
	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketKV).Put([]byte(key), data)
		})
		if err != nil {
			delete(s.cache, key)
			return fmt.Errorf("failed to write %q: %w", key, err)
		}
	}

	s.cache[key] = data
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (s *KVStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrStoreClosed
	}

	delete(s.cache, key)

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketKV).Delete([]byte(key))
	})
}

func (s *KVStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.cache = nil

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
