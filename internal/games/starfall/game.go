// Package starfall implements the Starfall platformer: run and jump across
// static platforms, collect the row of falling stars, and dodge the bombs
// that appear every time the row is cleared. A bomb ends the round and the
// scene restarts a few seconds later.
//
// All simulation runs in world units on simulated time, so a game driven
// with the same seed and inputs always plays out the same way.
package starfall

import (
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "starfall"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// Game implements registry.Game for Starfall.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.StarfallConfig
	fixed   bool // cfg was injected and must not be reloaded

	rng  *core.RNG
	sess *session

	paused bool
	round  int
	tick   uint64
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to an already loaded configuration.
func NewWithConfig(cfg config.StarfallConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starfall"
}

// Reset starts a fresh game: a new round with score 0.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		// Load game config
		cfg, err := config.LoadStarfall(configPath)
		if err != nil {
			cfg = config.DefaultStarfallConfig()
		}
		// Apply difficulty preset if set
		if difficultyPreset != "" {
			config.ApplyStarfallPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rng = core.NewRNG(runtime.Seed)
	g.round = 0
	g.tick = 0
	g.restart()
}

// Resize updates the terminal size. The world keeps its size and the round
// carries on.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// restart replaces the session unpaused. The old session's pending timers
// go with it.
func (g *Game) restart() {
	if g.sess != nil {
		g.sess.sched.CancelAll()
	}
	g.round++
	g.paused = false
	g.sess = newSession(g.cfg, g.rng, g.restart)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.sess

	// Handle restart
	if in.Has(core.ActionRestart) && s.gameOver {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := g.runtime.TickInterval()
	wasOver := s.gameOver

	s.sched.Advance(dt)
	if g.sess != s {
		// the restart timer fired
		return core.StepResult{State: g.State()}
	}

	s.updatePlayer(in)
	s.world.Step(dt.Seconds())
	s.playerAni.Update(dt.Seconds())

	return core.StepResult{
		State:     g.State(),
		RoundOver: !wasOver && s.gameOver,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sess.score,
		GameOver: g.sess.gameOver,
		Paused:   g.paused,
		Round:    g.round,
		Waves:    g.sess.waves,
	}
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.StarfallConfig {
	return g.cfg
}

// Register game in the global registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
