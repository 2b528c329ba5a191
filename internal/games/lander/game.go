// Package lander implements the rocket landing game: a rocket steered with a
// main engine and two side thrusters against gravity, ending each round in a
// landing or an explosion.
package lander

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/assets"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// Sounds receives the game's audio cues.
type Sounds interface {
	SetThrust(on bool)
	Explode()
}

type silentSounds struct{}

func (silentSounds) SetThrust(bool) {}
func (silentSounds) Explode()       {}

// Game is the state machine driving one lander session. It is not safe for
// concurrent use; the platform calls Step and Render from its update loop.
type Game struct {
	cfg     config.Config
	sprites spriteSet
	logger  *log.Logger
	sounds  Sounds

	state   State
	outcome Outcome

	world     *physics.World
	entities  []*Entity // draw order
	rocket    *Entity
	platform  *Entity
	explosion *Entity

	frame       int // Steps since the game was created, drives animation
	roundTicks  int
	landedTicks int
	rounds      int

	field *core.Screen
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSounds sets the audio sink.
func WithSounds(s Sounds) Option {
	return func(g *Game) {
		if s != nil {
			g.sounds = s
		}
	}
}

// New creates a game on the intro screen.
func New(cfg config.Config, lib *assets.Library, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sprites, err := resolveSprites(lib)
	if err != nil {
		return nil, fmt.Errorf("lander: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		sprites: sprites,
		logger:  log.New(io.Discard),
		sounds:  silentSounds{},
		state:   StateIntro,
		field:   core.NewScreen(0, 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// State returns the active state.
func (g *Game) State() State {
	return g.state
}

// Outcome returns how the last round ended. Only meaningful in StateGameOver.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Rocket returns the current round's rocket, or nil before the first round.
func (g *Game) Rocket() *Entity {
	return g.rocket
}

// World returns the current round's physics world, or nil before the first round.
func (g *Game) World() *physics.World {
	return g.world
}

// Entities returns the entities drawn this frame, in draw order.
func (g *Game) Entities() []*Entity {
	return g.entities
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	switch g.state {
	case StateIntro, StateGameOver:
		switch menuInput(in) {
		case menuQuit:
			g.logger.Info("quit", "state", g.state)
			return core.StepResult{Quit: true}
		case menuStart:
			g.startRound()
		}
		return core.StepResult{}

	case StatePlaying:
		return g.stepPlaying(in)
	}
	return core.StepResult{}
}

// stepPlaying runs one frame of a round: controls, velocity snapshot, physics
// step, entity sync, then the end-of-round checks. The checks run before the
// platform draws the frame, so a crash frame already shows the explosion.
func (g *Game) stepPlaying(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.sounds.SetThrust(false)
		g.logger.Info("quit", "state", g.state, "tick", g.roundTicks)
		return core.StepResult{Quit: true}
	}

	rocket := g.rocket
	rocket.ResetThrusters()
	if in.Has(core.ActionThrust) {
		rocket.ApplyThrust()
	}
	if in.Has(core.ActionRCSLeft) {
		rocket.ApplyYaw(YawLeft)
	}
	if in.Has(core.ActionRCSRight) {
		rocket.ApplyYaw(YawRight)
	}
	g.sounds.SetThrust(rocket.Firing())

	rocket.StoreVelocity()
	g.world.Step(g.cfg.Physics.StepSize)

	for _, e := range g.entities {
		e.Sync(g.cfg.World.Height)
	}
	g.roundTicks++

	if reason, crashed := CheckCrash(rocket.Body.Position(), rocket.Rocket.Acceleration, g.cfg.Crash); crashed {
		g.crash(reason)
		return core.StepResult{}
	}

	if physics.Touching(rocket.Body, g.platform.Shape) && restingUpright(rocket.Body, g.cfg.Landing) {
		g.landedTicks++
	} else {
		g.landedTicks = 0
	}
	if g.landedTicks >= g.cfg.Landing.HoldTicks {
		g.land()
	}
	return core.StepResult{}
}

// startRound builds a fresh world and entity set and enters StatePlaying.
func (g *Game) startRound() {
	g.world = physics.NewWorld(g.cfg.Physics.Gravity)
	g.rocket = NewRocket(g.world, g.cfg.Rocket)
	g.platform = NewPlatform(g.world, g.cfg.Platform)
	g.explosion = NewExplosion(g.world, g.cfg.World)
	g.entities = []*Entity{g.rocket, g.platform, g.explosion}
	for _, e := range g.entities {
		e.SyncVisual(g.cfg.World.Height)
	}

	g.outcome = Outcome{}
	g.roundTicks = 0
	g.landedTicks = 0
	g.rounds++
	g.state = StatePlaying

	g.logger.Info("round started", "round", g.rounds)
}

// crash ends the round in an explosion. The rocket leaves the world and the
// draw list here and nowhere else.
func (g *Game) crash(reason CrashReason) {
	pos := g.rocket.Body.Position()
	accel := g.rocket.Rocket.Acceleration

	if err := g.world.Remove(g.rocket.Body, g.rocket.Shape); err != nil {
		g.logger.Error("remove rocket", "err", err)
	}
	g.entities = slices.DeleteFunc(g.entities, func(e *Entity) bool {
		return e.Kind == KindRocket
	})

	// Keep the blast on the field even when the rocket left it.
	site := pos
	site.X = core.ClampF(site.X, 0, g.cfg.World.Width)
	site.Y = core.ClampF(site.Y, 0, g.cfg.World.Height)
	g.world.Move(g.explosion.Body, g.explosion.Shape, site)
	g.explosion.SyncVisual(g.cfg.World.Height)

	g.sounds.SetThrust(false)
	g.sounds.Explode()

	g.outcome = Outcome{Reason: reason}
	g.state = StateGameOver

	g.logger.Warn("rocket crashed",
		"round", g.rounds,
		"reason", reason,
		"x", pos.X, "y", pos.Y,
		"ax", accel.X, "ay", accel.Y,
		"tick", g.roundTicks,
	)
}

// land ends the round with the rocket resting on the platform.
func (g *Game) land() {
	g.sounds.SetThrust(false)
	g.outcome = Outcome{Landed: true}
	g.state = StateGameOver

	pos := g.rocket.Body.Position()
	g.logger.Info("rocket landed", "round", g.rounds, "x", pos.X, "tick", g.roundTicks)
}
