// Package config provides YAML-based game configuration loading and
// difficulty presets for Starfall.
package config

import "fmt"

// StarfallConfig contains all tunable parameters of the Starfall scene.
type StarfallConfig struct {
	World     WorldConfig      `yaml:"world"`
	Player    PlayerConfig     `yaml:"player"`
	Stars     StarsConfig      `yaml:"stars"`
	Bombs     BombsConfig      `yaml:"bombs"`
	GameOver  GameOverConfig   `yaml:"game_over"`
	Platforms []PlatformConfig `yaml:"platforms"`
}

// WorldConfig defines the playfield size and gravity.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // units per second squared, downward
}

// PlayerConfig defines the player sprite and its controls.
type PlayerConfig struct {
	X         float64 `yaml:"x"` // spawn centre
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Bounce    float64 `yaml:"bounce"`
	RunSpeed  float64 `yaml:"run_speed"`
	JumpSpeed float64 `yaml:"jump_speed"` // applied upward
}

// StarsConfig defines the row of collectible stars.
type StarsConfig struct {
	Count     int     `yaml:"count"`
	StartX    float64 `yaml:"start_x"`
	StepX     float64 `yaml:"step_x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Points    int     `yaml:"points"`
	BounceMin float64 `yaml:"bounce_min"`
	BounceMax float64 `yaml:"bounce_max"`
}

// BombsConfig defines where bombs spawn and how fast they fly.
type BombsConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// SplitX divides the spawn field: a player left of it gets a bomb in
	// [SplitX, MaxX), otherwise in [0, SplitX).
	SplitX    int     `yaml:"split_x"`
	MaxX      int     `yaml:"max_x"`
	SpawnY    float64 `yaml:"spawn_y"`
	SpeedMin  int     `yaml:"speed_min"`
	SpeedMax  int     `yaml:"speed_max"`
	FallSpeed float64 `yaml:"fall_speed"`
}

// GameOverConfig defines the end-of-round sequence.
type GameOverConfig struct {
	RestartDelayMS int `yaml:"restart_delay_ms"`
}

// PlatformConfig places one static platform. X and Y are the centre as a
// fraction of the world size; OffsetY is added in world units.
type PlatformConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	OffsetY float64 `yaml:"offset_y"`
	Scale   float64 `yaml:"scale"`
}

// PlatformBaseWidth and PlatformBaseHeight are the size of an unscaled platform.
const (
	PlatformBaseWidth  = 400
	PlatformBaseHeight = 32
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
// The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard)", s)
	}
}

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// Validate checks that the config describes a playable scene.
func (c StarfallConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive")
	case c.Stars.Count <= 0:
		return fmt.Errorf("config: stars.count must be positive, got %d", c.Stars.Count)
	case c.Stars.Width <= 0 || c.Stars.Height <= 0:
		return fmt.Errorf("config: star size must be positive")
	case c.Stars.Points < 0:
		return fmt.Errorf("config: stars.points must not be negative")
	case c.Stars.BounceMax < c.Stars.BounceMin:
		return fmt.Errorf("config: stars.bounce_max %v is below bounce_min %v", c.Stars.BounceMax, c.Stars.BounceMin)
	case c.Bombs.Width <= 0 || c.Bombs.Height <= 0:
		return fmt.Errorf("config: bomb size must be positive")
	case c.Bombs.SplitX <= 0 || c.Bombs.MaxX <= c.Bombs.SplitX:
		return fmt.Errorf("config: bombs need 0 < split_x < max_x, got %d/%d", c.Bombs.SplitX, c.Bombs.MaxX)
	case c.Bombs.SpeedMax < c.Bombs.SpeedMin:
		return fmt.Errorf("config: bombs.speed_max %d is below speed_min %d", c.Bombs.SpeedMax, c.Bombs.SpeedMin)
	case c.GameOver.RestartDelayMS < 0:
		return fmt.Errorf("config: game_over.restart_delay_ms must not be negative")
	}
	for i, p := range c.Platforms {
		if p.Scale <= 0 {
			return fmt.Errorf("config: platform %d has scale %v", i, p.Scale)
		}
	}
	return nil
}
