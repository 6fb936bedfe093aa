// Package registry holds the game factories the frontends start rounds
// from. A game registers itself in init(), so the CLI, the SSH server and
// the desktop window only need its ID.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/starfall/internal/core"
)

// Game is the contract between a game and the frontends that drive it.
// A game owns its simulation and draws into a core.Screen; it never sees
// the terminal, the key events or the wall clock.
type Game interface {
	// ID is the identifier used by the CLI and the score table ("starfall").
	ID() string

	// Title is the display name shown in menus ("Starfall").
	Title() string

	// Reset starts the game from scratch with the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of cfg.TickInterval().
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a cleared screen.
	Render(dst *core.Screen)

	// State returns score, round and the game over and pause flags.
	State() core.GameState
}

// Resizer is implemented by games that follow the screen size while a
// round is running instead of restarting.
type Resizer interface {
	Resize(w, h int)
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	games = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: f().Title()}
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}

// Title returns the display name of a registered game, or the ID itself
// when nothing is registered under it.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := games[id]; ok {
		return e.title
	}
	return id
}
