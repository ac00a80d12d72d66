// Package registry maps variant IDs to game factories. Variants register
// themselves in init(), so the CLI and the menu can list and start them
// without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-artillery/internal/core"
)

// Game is one playable variant. Implementations hold pure simulation state;
// the tui package owns timing, key mapping and the terminal.
type Game interface {
	// ID is the stable name used on the command line and in round history.
	ID() string

	// Title is the display name shown in menus.
	Title() string

	// Reset starts a new round with the given seed and screen size. It is
	// called before the first Step and again after each finished round.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions collected since the
	// previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the field into a cleared screen.
	Render(dst *core.Screen)

	// State reports turn, shot count and the winner once the round is over.
	State() core.GameState
}

// ErrUnknownVariant is returned by Create for IDs nobody registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game for one variant.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant. It is called from init functions and panics on a
// duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
