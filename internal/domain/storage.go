package domain

// KeyValueStore persists whole values under string keys.
// Reads and writes replace the entire value; a missing key is reported
// through the bool result and is not an error.
type KeyValueStore interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// FavoritesObserver receives the favorite id set whenever it changes.
type FavoritesObserver interface {
	OnFavoritesChanged(ids []string)
}

// FavoritesObserverFunc adapts a plain function to FavoritesObserver.
type FavoritesObserverFunc func(ids []string)

func (f FavoritesObserverFunc) OnFavoritesChanged(ids []string) { f(ids) }
