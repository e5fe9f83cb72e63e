package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default brick breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Ball: BallConfig{
			Radius:         8,
			MaxBounceAngle: 60,
		},
		Paddle: PaddleConfig{
			Height:       15,
			Speed:        7,
			BottomMargin: 10,
		},
		Bricks: BrickConfig{
			Cols:       9,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  60,
			OffsetLeft: 35,
			Points:     10,
		},
		Items: ItemConfig{
			Size:       20,
			FallSpeed:  2,
			DropChance: 0.3,
		},
		Effects: EffectConfig{
			DurationMs:       10000,
			SlowMultiplier:   0.7,
			ExpandMultiplier: 1.5,
			ShrinkMultiplier: 0.7,
		},
		Animation: AnimationConfig{
			ResizeMs:         300,
			FadeInMs:         500,
			DisplayMs:        2000,
			FadeOutMs:        500,
			ParticleCount:    8,
			ParticleSpeed:    3,
			ParticleGravity:  0.2,
			ParticleLifetime: 60,
			PopupLifetime:    60,
			PopupFloat:       2,
		},
		Game: GameConfig{
			InitialLives: 3,
			MaxLives:     5,
		},
		Difficulties: DifficultyTable{
			Easy:   DifficultySetting{BallSpeed: 4, PaddleWidth: 120, BrickRows: 3},
			Normal: DifficultySetting{BallSpeed: 5, PaddleWidth: 100, BrickRows: 5},
			Hard:   DifficultySetting{BallSpeed: 7, PaddleWidth: 80, BrickRows: 7},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
