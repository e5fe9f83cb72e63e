// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the brick breaker.
// Distances are logical field pixels, speeds are pixels per frame and
// durations are milliseconds.
type BreakoutConfig struct {
	Field        FieldConfig     `yaml:"field"`
	Ball         BallConfig      `yaml:"ball"`
	Paddle       PaddleConfig    `yaml:"paddle"`
	Bricks       BrickConfig     `yaml:"bricks"`
	Items        ItemConfig      `yaml:"items"`
	Effects      EffectConfig    `yaml:"effects"`
	Animation    AnimationConfig `yaml:"animation"`
	Game         GameConfig      `yaml:"game"`
	Difficulties DifficultyTable `yaml:"difficulties"`
}

// FieldConfig is the logical playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball geometry.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	// MaxBounceAngle is the paddle deflection at the paddle edge, in degrees.
	MaxBounceAngle float64 `yaml:"max_bounce_angle"`
}

// PaddleConfig defines paddle geometry and keyboard speed.
type PaddleConfig struct {
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
	Points     int     `yaml:"points"`
}

// ItemConfig defines falling power-up items.
type ItemConfig struct {
	Size       float64 `yaml:"size"`
	FallSpeed  float64 `yaml:"fall_speed"`
	DropChance float64 `yaml:"drop_chance"`
}

// EffectConfig defines timed effect parameters.
type EffectConfig struct {
	DurationMs       int64   `yaml:"duration_ms"`
	SlowMultiplier   float64 `yaml:"slow_multiplier"`
	ExpandMultiplier float64 `yaml:"expand_multiplier"`
	ShrinkMultiplier float64 `yaml:"shrink_multiplier"`
}

// AnimationConfig defines cosmetic animation timings.
type AnimationConfig struct {
	ResizeMs         int64   `yaml:"resize_ms"`
	FadeInMs         int64   `yaml:"fade_in_ms"`
	DisplayMs        int64   `yaml:"display_ms"`
	FadeOutMs        int64   `yaml:"fade_out_ms"`
	ParticleCount    int     `yaml:"particle_count"`
	ParticleSpeed    float64 `yaml:"particle_speed"`
	ParticleGravity  float64 `yaml:"particle_gravity"`
	ParticleLifetime int     `yaml:"particle_lifetime"`
	PopupLifetime    int     `yaml:"popup_lifetime"`
	PopupFloat       float64 `yaml:"popup_float"`
}

// GameConfig defines life rules.
type GameConfig struct {
	InitialLives int `yaml:"initial_lives"`
	MaxLives     int `yaml:"max_lives"`
}

// DifficultySetting is the per-difficulty tuning.
type DifficultySetting struct {
	BallSpeed   float64 `yaml:"ball_speed"`
	PaddleWidth float64 `yaml:"paddle_width"`
	BrickRows   int     `yaml:"brick_rows"`
}

// DifficultyTable holds one setting per preset.
type DifficultyTable struct {
	Easy   DifficultySetting `yaml:"easy"`
	Normal DifficultySetting `yaml:"normal"`
	Hard   DifficultySetting `yaml:"hard"`
}

// Validate reports configuration values the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball radius must be positive"))
	}
	if c.Bricks.Cols <= 0 || c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, errors.New("brick grid needs positive cols, width and height"))
	}
	if c.Items.DropChance < 0 || c.Items.DropChance > 1 {
		errs = append(errs, fmt.Errorf("drop chance %v outside [0, 1]", c.Items.DropChance))
	}
	if c.Game.InitialLives <= 0 || c.Game.MaxLives < c.Game.InitialLives {
		errs = append(errs, errors.New("lives: need 0 < initial_lives <= max_lives"))
	}
	for _, p := range Presets() {
		s := c.Difficulties.For(p)
		if s.BallSpeed <= 0 || s.PaddleWidth <= 0 || s.BrickRows <= 0 {
			errs = append(errs, fmt.Errorf("difficulty %s: speed, paddle width and rows must be positive", p))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid breakout config: %w", err)
	}
	return nil
}
