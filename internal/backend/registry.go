package backend

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrUnknownBackend is returned by Open for a name nobody registered.
var ErrUnknownBackend = errors.New("backend: unknown backend")

// Opener builds a Backend. It may fail when the underlying library is unusable.
type Opener func() (*Backend, error)

type entry struct {
	name string
	rank int
	open Opener
}

var (
	mu       sync.RWMutex
	registry = map[string]entry{}
)

// Register makes a backend available under name. Lower ranks are preferred by
// Names. Registering the same name twice replaces the earlier entry.
func Register(name string, rank int, open Opener) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = entry{name: name, rank: rank, open: open}
	log.Debug().Str("backend", name).Int("rank", rank).Msg("linear algebra backend registered")
}

// Names returns the registered backends, most preferred first.
func Names() []string {
	mu.RLock()
	entries := make([]entry, 0, len(registry))
	for _, e := range registry {
		entries = append(entries, e)
	}
	mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].rank != entries[j].rank {
			return entries[i].rank < entries[j].rank
		}
		return entries[i].name < entries[j].name
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Open builds the backend registered under name.
func Open(name string) (*Backend, error) {
	mu.RLock()
	e, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	b, err := e.open()
	if err != nil {
		return nil, fmt.Errorf("backend: open %s: %w", name, err)
	}
	return b, nil
}
