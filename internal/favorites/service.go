package favorites

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/mmcdole/mealbook/internal/domain"
)

// StorageKey is the fixed key holding the serialized favorite id sequence.
const StorageKey = "FAVORITE_MEALS"

// State is the lifecycle state of the favorites service
type State int

const (
	StateUnloaded State = iota
	StateLoaded
)

func (s State) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "unloaded"
}

// Service owns the set of favorite recipe ids and mirrors it to a key-value
// store. It is the single source of truth for "is recipe X a favorite";
// views read snapshots and request mutations through it.
type Service struct {
	kv     domain.KeyValueStore
	logger *slog.Logger

	mu    sync.RWMutex
	state State
	ids   []string // insertion order, unique

	obsMu     sync.Mutex
	observers map[int]domain.FavoritesObserver
	nextObsID int
}

// NewService creates a favorites service in the Unloaded state.
func NewService(kv domain.KeyValueStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		kv:        kv,
		logger:    logger,
		observers: make(map[int]domain.FavoritesObserver),
	}
}

// Load reads the persisted id sequence and replaces the in-memory set.
// A missing key initializes the empty set. On failure the previous state
// is kept and the error wraps domain.ErrStorage.
func (s *Service) Load() ([]string, error) {
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Error("failed to read favorites", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	var ids []string
	if ok && len(data) > 0 {
		if err := json.Unmarshal(data, &ids); err != nil {
			s.logger.Error("failed to decode favorites", "error", err)
			return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorage, StorageKey, err)
		}
	}
	ids = dedupe(ids)

	s.mu.Lock()
	s.ids = ids
	s.state = StateLoaded
	snapshot := slices.Clone(ids)
	s.mu.Unlock()

	s.logger.Debug("loaded favorites", "count", len(snapshot))
	s.notify(snapshot)
	return slices.Clone(snapshot), nil
}

// State returns the lifecycle state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsFavorite reports membership from memory; always false before Load.
func (s *Service) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ids, id)
}

// IDs returns a snapshot of the favorite ids in insertion order.
func (s *Service) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ids)
}

// Count returns the number of favorites.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Toggle removes id if it is a favorite and appends it otherwise, then writes
// the full sequence back to storage. It returns the new membership of id.
//
// If the write fails the in-memory change is kept and the returned error wraps
// domain.ErrStorage; a later Load reverts to whatever was persisted.
func (s *Service) Toggle(id string) (bool, error) {
	if id == "" {
		return false, domain.ErrInvalidRecipeID
	}

	s.mu.Lock()
	if s.state != StateLoaded {
		s.mu.Unlock()
		return false, domain.ErrStoreNotLoaded
	}

	member := true
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(slices.Clone(s.ids), i, i+1)
		member = false
	} else {
		s.ids = append(slices.Clone(s.ids), id)
	}
	snapshot := slices.Clone(s.ids)

	// The write happens under the lock so overlapping toggles persist in order.
	err := s.persist(snapshot)
	s.mu.Unlock()

	s.notify(snapshot)

	if err != nil {
		s.logger.Error("failed to persist favorites", "id", id, "favorite", member, "error", err)
		return member, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	s.logger.Info("toggled favorite", "id", id, "favorite", member, "count", len(snapshot))
	return member, nil
}

// Clear removes every favorite and deletes the stored key. On failure the
// set is left unchanged.
func (s *Service) Clear() (int, error) {
	s.mu.Lock()
	if s.state != StateLoaded {
		s.mu.Unlock()
		return 0, domain.ErrStoreNotLoaded
	}
	if err := s.kv.Delete(StorageKey); err != nil {
		s.mu.Unlock()
		s.logger.Error("failed to clear favorites", "error", err)
		return 0, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	n := len(s.ids)
	s.ids = nil
	s.mu.Unlock()

	s.notify([]string{})
	s.logger.Info("cleared favorites", "count", n)
	return n, nil
}

func (s *Service) persist(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.kv.Put(StorageKey, data)
}

// Subscribe registers an observer for set changes and returns a func that
// removes it. Observers are called synchronously after Load and Toggle.
func (s *Service) Subscribe(o domain.FavoritesObserver) func() {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = o
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *Service) notify(ids []string) {
	s.obsMu.Lock()
	observers := make([]domain.FavoritesObserver, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.obsMu.Unlock()

	for _, o := range observers {
		o.OnFavoritesChanged(slices.Clone(ids))
	}
}

// dedupe drops repeated and empty ids, keeping first occurrences in order
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
