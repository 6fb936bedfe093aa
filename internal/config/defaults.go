package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the default Starfall configuration.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		World: WorldConfig{
			Width:   1280,
			Height:  720,
			Gravity: 300,
		},
		Player: PlayerConfig{
			X:         400,
			Y:         450,
			Width:     32,
			Height:    48,
			Bounce:    0.2,
			RunSpeed:  300,
			JumpSpeed: 330,
		},
		Stars: StarsConfig{
			Count:     7,
			StartX:    300,
			StepX:     160,
			Width:     24,
			Height:    22,
			Points:    10,
			BounceMin: 0.4,
			BounceMax: 0.6,
		},
		Bombs: BombsConfig{
			Width:     14,
			Height:    14,
			SplitX:    400,
			MaxX:      800,
			SpawnY:    16,
			SpeedMin:  200,
			SpeedMax:  600,
			FallSpeed: 20,
		},
		GameOver: GameOverConfig{
			RestartDelayMS: 7000,
		},
		Platforms: []PlatformConfig{
			{X: 0.50, Y: 1.00, OffsetY: -32, Scale: 4},
			{X: 0.55, Y: 0.70, Scale: 1},
			{X: 0.10, Y: 0.50, Scale: 2},
			{X: 0.90, Y: 0.40, Scale: 2},
			{X: 0.50, Y: 0.30, Scale: 0.5},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultStarfallYAML
}
