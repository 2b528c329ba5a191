package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-lander/internal/core"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// Fixed world and physics constants.
const (
	Width     = 600.0
	Height    = 800.0
	Gravity   = -900.0
	FrameRate = 60
	StepSize  = 1.0 / FrameRate
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  Width,
			Height: Height,
		},
		Physics: PhysicsConfig{
			Gravity:   Gravity,
			StepSize:  StepSize,
			FrameRate: FrameRate,
		},
		Rocket: RocketConfig{
			Mass:        100,
			Width:       100,
			Height:      250,
			StartX:      300,
			StartY:      600,
			Elasticity:  5,
			ThrustForce: 200000,
			RCSForce:    50000,
			RCSOffsetY:  25,
		},
		Platform: PlatformConfig{
			X1:       250,
			X2:       350,
			Y:        20,
			Radius:   10,
			Friction: 0.3,
		},
		Crash: CrashConfig{
			MinX:     0,
			MaxX:     int(Width),
			MinY:     0,
			MaxAccel: 250,
		},
		Landing: LandingConfig{
			MaxSpeed:    5,
			MaxAngleDeg: 10,
			HoldTicks:   FrameRate,
		},
		Colors: ColorConfig{
			IntroText:    core.ColorBlue,
			GameOverText: core.ColorRed,
			LandedText:   core.ColorGreen,
			HUD:          core.ColorGray,
		},
		Input: InputConfig{
			HoldMS: 550,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}
