// Package registry provides a global registry for world definitions.
// Built-in worlds register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded
// dependencies; externally loaded world files can be added at startup.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-wayfarer/internal/world"
)

// WorldInfo contains metadata about a registered world.
type WorldInfo struct {
	ID      string
	Title   string
	Sites   int
	BuiltIn bool
}

// Factory is a function that builds a fresh copy of a world definition.
type Factory func() *world.World

type entry struct {
	factory Factory
	info    WorldInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a built-in world factory to the registry.
// Typically called from a world package's init() function.
// Panics if a world with the same id is already registered or the
// factory produces an invalid world.
func Register(f Factory) {
	w := f()
	if err := w.Validate(); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	add(w.ID, f, WorldInfo{ID: w.ID, Title: w.Title, Sites: w.SiteCount(), BuiltIn: true})
}

// AddLoaded registers an externally loaded world definition, replacing
// any built-in world with the same id.
func AddLoaded(w *world.World) error {
	if err := w.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	entries[w.ID] = entry{
		factory: func() *world.World { return w },
		info:    WorldInfo{ID: w.ID, Title: w.Title, Sites: w.SiteCount()},
	}
	return nil
}

func add(id string, f Factory, info WorldInfo) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: world %q already registered", id))
	}
	entries[id] = entry{factory: f, info: info}
}

// List returns information about all registered worlds, sorted by id.
func List() []WorldInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]WorldInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a fresh copy of a world by its id.
// Returns an error if the world id is not registered.
func Create(id string) (*world.World, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown world %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a world with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
