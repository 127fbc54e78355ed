package game

import (
	"fmt"
	"sort"
	"sync"
)

// ModeInfo contains metadata about a registered game mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory creates a session configured for a mode.
type Factory func(opts Options) *Session

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// RegisterMode adds a mode factory to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func RegisterMode(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("game: mode %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// Modes returns information about all registered modes, sorted by ID.
func Modes() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// NewMode instantiates a session for the mode with the given ID.
// Returns an error if the mode is not registered.
func NewMode(id string, opts Options) (*Session, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("game: unknown mode %q", id)
	}

	return f(opts), nil
}

// ModeExists checks if a mode with the given ID is registered.
func ModeExists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// ModeTitle returns the display name for a mode, or the ID itself when
// the mode is unknown.
func ModeTitle(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
