// Package colorscheme provides a registry of piece color generators.
// Schemes register themselves in init() so the CLI and the terminal backends
// can list and cycle them by ID.
package colorscheme

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tetrotime/internal/tetromino"
)

// DefaultID is the scheme used when none is configured.
const DefaultID = "random"

// ErrUnknownScheme is returned by Create for unregistered IDs.
var ErrUnknownScheme = errors.New("unknown colorscheme")

// Info contains metadata about a registered scheme.
type Info struct {
	ID    string
	Title string
}

// Factory creates a color source drawing randomness from rng.
// The source owns rng; it is not safe for concurrent use.
type Factory func(rng *rand.Rand) tetromino.ColorSource

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scheme to the registry.
// Panics if a scheme with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("colorscheme: %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns all registered schemes, sorted by ID.
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

// Create instantiates a scheme seeded with seed.
func Create(id string, seed int64) (tetromino.ColorSource, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("colorscheme: %w %q", ErrUnknownScheme, id)
	}
	return f(rand.New(rand.NewSource(seed))), nil
}

// Exists checks if a scheme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// NextID returns the scheme after id in List order, wrapping around.
// Unknown IDs yield the first scheme.
func NextID(id string) string {
	list := List()
	if len(list) == 0 {
		return id
	}
	for i, info := range list {
		if info.ID == id {
			return list[(i+1)%len(list)].ID
		}
	}
	return list[0].ID
}
