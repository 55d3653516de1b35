// Package strategy provides a registry of headless auto-play strategies.
// Strategies register themselves in init() functions, so the CLI can list
// and instantiate them by ID without hardcoded dependencies.
package strategy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tile2048/internal/engine"
)

// Strategy picks the next direction for a game.
type Strategy interface {
	// ID returns a unique identifier (e.g., "greedy").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Reset prepares the strategy for a new game.
	// Randomized strategies seed themselves from seed.
	Reset(seed int64)

	// Next returns the direction to play on the given snapshot.
	Next(s engine.Snapshot) engine.Direction
}

// Info contains metadata about a registered strategy.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new strategy instance.
type Factory func() Strategy

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("strategy: %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered strategies, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a strategy by its ID.
func Create(id string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("strategy: unknown strategy %q", id)
	}
	return f(), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
