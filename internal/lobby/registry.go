// Package lobby tracks the live games a server is hosting.
package lobby

import (
	"crypto/rand"
	"encoding/hex"
	"sort"
	"sync"

	"polis/internal/engine"
	"polis/internal/rules"
)

// Registry is a concurrency-safe index of in-memory games keyed by their
// short join code.
type Registry struct {
	mu    sync.Mutex
	games map[string]*engine.Game
}

func NewRegistry() *Registry {
	return &Registry{games: make(map[string]*engine.Game)}
}

// Create makes a fresh game with a newly generated join code.
func (r *Registry) Create(catalog *rules.Catalog, config engine.Config) *engine.Game {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := generateID()
	for r.games[id] != nil {
		id = generateID()
	}
	g := engine.NewGame(id, catalog, config)
	r.games[id] = g
	return g
}

// Get returns the game with the given ID, or nil.
func (r *Registry) Get(id string) *engine.Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.games[id]
}

// Put registers an existing game, replacing any previous entry with the
// same ID. Used when restoring saved games at startup.
func (r *Registry) Put(g *engine.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.ID] = g
}

// IDs returns the registered game IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func generateID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
