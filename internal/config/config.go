// Package config provides the immutable game configuration and its YAML
// loading. Physics and world constants are fixed; only presentation settings
// (colors, input timing, audio) can be overridden from a file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete configuration handed to the game at construction.
type Config struct {
	World    WorldConfig    `yaml:"-"`
	Physics  PhysicsConfig  `yaml:"-"`
	Rocket   RocketConfig   `yaml:"-"`
	Platform PlatformConfig `yaml:"-"`
	Crash    CrashConfig    `yaml:"-"`
	Landing  LandingConfig  `yaml:"-"`

	Colors ColorConfig `yaml:"colors"`
	Input  InputConfig `yaml:"input"`
	Audio  AudioConfig `yaml:"audio"`
}

// WorldConfig is the size of the play field in world units.
type WorldConfig struct {
	Width  float64
	Height float64
}

// PhysicsConfig holds the fixed simulation constants.
type PhysicsConfig struct {
	Gravity   float64 // Vertical acceleration, negative is down
	StepSize  float64 // Seconds advanced per physics step
	FrameRate int     // Target ticks per second
}

// RocketConfig describes the player's rocket.
type RocketConfig struct {
	Mass        float64
	Width       float64
	Height      float64
	StartX      float64
	StartY      float64
	Elasticity  float64
	ThrustForce float64 // Applied along the body's local +Y
	RCSForce    float64 // Applied along the body's local X
	RCSOffsetY  float64 // Local Y of the side thrusters
}

// PlatformConfig describes the landing pad segment in physics space.
type PlatformConfig struct {
	X1, X2   float64
	Y        float64
	Radius   float64
	Friction float64
}

// CrashConfig bounds the rocket during play.
type CrashConfig struct {
	MinX     int
	MaxX     int
	MinY     int
	MaxAccel float64 // Per-axis limit on the frame-to-frame velocity delta
}

// LandingConfig decides when a resting rocket counts as landed.
type LandingConfig struct {
	MaxSpeed    float64
	MaxAngleDeg float64
	HoldTicks   int
}

// ColorConfig holds text and HUD colors.
type ColorConfig struct {
	IntroText    core.Color `yaml:"intro_text"`
	GameOverText core.Color `yaml:"game_over_text"`
	LandedText   core.Color `yaml:"landed_text"`
	HUD          core.Color `yaml:"hud"`
}

// InputConfig tunes how held keys are derived from terminal key repeats.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// HoldWindow returns the hold duration as a time.Duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	case c.Physics.StepSize <= 0:
		return fmt.Errorf("%w: step size %v", ErrInvalid, c.Physics.StepSize)
	case c.Physics.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalid, c.Physics.FrameRate)
	case c.Rocket.Mass <= 0 || c.Rocket.Width <= 0 || c.Rocket.Height <= 0:
		return fmt.Errorf("%w: rocket mass/size must be positive", ErrInvalid)
	case c.Input.HoldMS < 0:
		return fmt.Errorf("%w: input.hold_ms %d", ErrInvalid, c.Input.HoldMS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %v outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	return nil
}
