package lander

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// State is the game's top-level mode. Exactly one is active at a time.
type State int

const (
	StateIntro State = iota
	StatePlaying
	StateGameOver
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// menuChoice is what a key press means on the intro and game over screens.
type menuChoice int

const (
	menuStay menuChoice = iota
	menuStart
	menuQuit
)

// menuInput reads the only two inputs the intro and game over screens accept.
// Quit wins when both arrive in the same frame.
func menuInput(in core.InputFrame) menuChoice {
	switch {
	case in.Has(core.ActionQuit):
		return menuQuit
	case in.Has(core.ActionStart):
		return menuStart
	default:
		return menuStay
	}
}

// CrashReason says which limit ended the round.
type CrashReason int

const (
	CrashNone CrashReason = iota
	CrashBelow
	CrashLeft
	CrashRight
	CrashImpact
)

// String returns a short description shown on the game over screen.
func (r CrashReason) String() string {
	switch r {
	case CrashBelow:
		return "fell below the ground"
	case CrashLeft:
		return "drifted off the left edge"
	case CrashRight:
		return "drifted off the right edge"
	case CrashImpact:
		return "hit too hard"
	default:
		return "none"
	}
}

// Outcome records how a round ended.
type Outcome struct {
	Landed bool
	Reason CrashReason
}

// CheckCrash applies the round's limits to a rocket position and derived
// acceleration. Positions are truncated to integers; all comparisons are
// strict, so a value sitting exactly on a limit is still in bounds.
func CheckCrash(pos, accel cp.Vector, limits config.CrashConfig) (CrashReason, bool) {
	x, y := int(pos.X), int(pos.Y)
	switch {
	case y < limits.MinY:
		return CrashBelow, true
	case x < limits.MinX:
		return CrashLeft, true
	case x > limits.MaxX:
		return CrashRight, true
	case math.Abs(accel.X) > limits.MaxAccel || math.Abs(accel.Y) > limits.MaxAccel:
		return CrashImpact, true
	}
	return CrashNone, false
}

// normalizeAngle maps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

// restingUpright reports whether a rocket is slow and level enough to count
// towards a landing.
func restingUpright(body *cp.Body, lc config.LandingConfig) bool {
	if body.Velocity().Length() >= lc.MaxSpeed {
		return false
	}
	return math.Abs(normalizeAngle(body.Angle())) < lc.MaxAngleDeg*math.Pi/180
}
