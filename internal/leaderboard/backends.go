package leaderboard

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Backend kinds registered by this package.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// BackendFactory opens a backend at path. The returned closer releases any
// resources the backend holds and may be a no-op.
type BackendFactory func(path string) (Backend, io.Closer, error)

var (
	factories = make(map[string]BackendFactory)
	mu        sync.RWMutex
)

func init() {
	RegisterBackend(BackendJSON, func(path string) (Backend, io.Closer, error) {
		return NewFileStore(path), nopCloser{}, nil
	})
	RegisterBackend(BackendSQLite, func(path string) (Backend, io.Closer, error) {
		store, err := OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// RegisterBackend adds a backend factory under kind.
// Panics if kind is already registered.
func RegisterBackend(kind string, f BackendFactory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("leaderboard: backend %q already registered", kind))
	}
	factories[kind] = f
}

// Backends returns the registered backend kinds, sorted.
func Backends() []string {
	mu.RLock()
	defer mu.RUnlock()

	kinds := make([]string, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// OpenBackend opens the backend registered under kind. An empty kind means
// BackendJSON.
func OpenBackend(kind, path string) (Backend, io.Closer, error) {
	if kind == "" {
		kind = BackendJSON
	}

	mu.RLock()
	f, ok := factories[kind]
	mu.RUnlock()
	if !ok {
		return nil, nil, fmt.Errorf("leaderboard: unknown backend %q", kind)
	}
	return f(path)
}
