// Package registry holds the board variants the front ends can start.
// Variants register themselves in init() so the CLI and SSH server can list
// and create them by ID without importing each one explicitly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Game is the contract between a game and the terminal platform.
// Implementations hold pure logic; the platform owns timing, key mapping
// and drawing to the terminal.
type Game interface {
	// ID returns the variant identifier used on the command line and as the
	// statistics key (e.g. "minesweeper_expert").
	ID() string

	// Title returns a display name.
	Title() string

	// Reset starts a fresh round.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick worth of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant. It panics on a duplicate ID.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = f().Title()
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the metadata for a variant.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a variant is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
