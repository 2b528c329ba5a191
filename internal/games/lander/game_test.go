package lander

import (
	"math"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-lander/internal/assets"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

type recordingSounds struct {
	thrust     []bool
	explosions int
}

func (r *recordingSounds) SetThrust(on bool) { r.thrust = append(r.thrust, on) }
func (r *recordingSounds) Explode()          { r.explosions++ }

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	lib, err := assets.LoadEmbedded()
	if err != nil {
		t.Fatalf("load assets: %v", err)
	}
	g, err := New(config.Default(), lib, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func startedGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := newTestGame(t, opts...)
	g.Step(core.NewInputFrame(core.ActionStart))
	if g.State() != StatePlaying {
		t.Fatalf("start should enter playing, got %v", g.State())
	}
	return g
}

// runUntilGameOver steps with no input until the round ends or maxTicks pass.
func runUntilGameOver(g *Game, maxTicks int) int {
	for i := 1; i <= maxTicks; i++ {
		g.Step(core.NewInputFrame())
		if g.State() == StateGameOver {
			return i
		}
	}
	return -1
}

func TestNewRequiresSprites(t *testing.T) {
	if _, err := New(config.Default(), nil); err == nil {
		t.Error("New without a sprite library should fail")
	}
}

func TestIntroAcceptsOnlyStartAndQuit(t *testing.T) {
	ignored := []core.Action{core.ActionNone, core.ActionThrust, core.ActionRCSLeft, core.ActionRCSRight}

	g := newTestGame(t)
	for _, a := range ignored {
		res := g.Step(core.NewInputFrame(a))
		if res.Quit || g.State() != StateIntro {
			t.Errorf("%v on intro: state=%v quit=%v, expected to stay", a, g.State(), res.Quit)
		}
	}
	if g.World() != nil {
		t.Error("intro should not build a world")
	}

	if res := g.Step(core.NewInputFrame(core.ActionQuit)); !res.Quit {
		t.Error("quit on intro should terminate")
	}

	g = newTestGame(t)
	g.Step(core.NewInputFrame(core.ActionStart))
	if g.State() != StatePlaying {
		t.Errorf("start on intro should enter playing, got %v", g.State())
	}
}

func TestQuitWinsOverStart(t *testing.T) {
	g := newTestGame(t)
	res := g.Step(core.NewInputFrame(core.ActionStart, core.ActionQuit))
	if !res.Quit {
		t.Error("quit should win when pressed with start")
	}
}

func TestGameOverAcceptsOnlyStartAndQuit(t *testing.T) {
	g := startedGame(t)
	if runUntilGameOver(g, 600) < 0 {
		t.Fatal("free fall should end the round")
	}

	for _, a := range []core.Action{core.ActionNone, core.ActionThrust, core.ActionRCSLeft, core.ActionRCSRight} {
		res := g.Step(core.NewInputFrame(a))
		if res.Quit || g.State() != StateGameOver {
			t.Errorf("%v on game over: state=%v quit=%v, expected to stay", a, g.State(), res.Quit)
		}
	}

	if res := g.Step(core.NewInputFrame(core.ActionQuit)); !res.Quit {
		t.Error("quit on game over should terminate")
	}
}

func TestPlayingQuit(t *testing.T) {
	g := startedGame(t)
	steps := g.World().Steps()

	res := g.Step(core.NewInputFrame(core.ActionQuit, core.ActionThrust))
	if !res.Quit {
		t.Fatal("quit while playing should terminate")
	}
	if g.World().Steps() != steps {
		t.Error("quit frame should not step the world")
	}
}

func TestScreenYRoundTrip(t *testing.T) {
	const h = config.Height
	for _, y := range []float64{0, 1, 20, 399.5, 600, 800, -10} {
		if got := ToScreenY(h, y); got != h-y {
			t.Errorf("ToScreenY(%v) = %v, expected %v", y, got, h-y)
		}
		if got := ToPhysicsY(h, ToScreenY(h, y)); got != y {
			t.Errorf("round trip of %v gave %v", y, got)
		}
	}
}

func TestSyncVisualMatchesBody(t *testing.T) {
	g := startedGame(t)
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(core.ActionRCSLeft))
		pos := g.Rocket().Body.Position()
		v := g.Rocket().Visual
		if v.X != pos.X || v.Y != config.Height-pos.Y || v.Angle != g.Rocket().Body.Angle() {
			t.Fatalf("tick %d: visual %+v does not match body %v", i, v, pos)
		}
	}
}

func TestSyncVisualIdempotent(t *testing.T) {
	g := startedGame(t)
	g.Step(core.NewInputFrame(core.ActionThrust, core.ActionRCSRight))

	r := g.Rocket()
	r.SyncVisual(config.Height)
	first := r.Visual
	r.SyncVisual(config.Height)
	if r.Visual != first {
		t.Errorf("second sync changed visual: %+v -> %+v", first, r.Visual)
	}
}

func TestThrustOneStep(t *testing.T) {
	cfg := config.Default()
	world := physics.NewWorld(0)
	r := NewRocket(world, cfg.Rocket)

	r.ApplyThrust()
	if r.Body.Position() != (cp.Vector{X: cfg.Rocket.StartX, Y: cfg.Rocket.StartY}) {
		t.Error("thrust should not move the rocket before a step")
	}
	world.Step(cfg.Physics.StepSize)

	want := cfg.Rocket.ThrustForce / cfg.Rocket.Mass * cfg.Physics.StepSize
	if got := r.Body.Velocity().Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("vy after one thrust step = %v, expected %v", got, want)
	}
	if got := r.Body.Velocity().X; math.Abs(got) > 1e-9 {
		t.Errorf("upright thrust should not push sideways, vx = %v", got)
	}

	// Forces are cleared after each step.
	world.Step(cfg.Physics.StepSize)
	if got := r.Body.Velocity().Y; math.Abs(got-want) > 1e-9 {
		t.Errorf("vy should hold without more thrust, got %v", got)
	}
}

func TestYawTurnsRocket(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		dir       Yaw
		vxSign    float64
		spinSign  float64
		flagCheck func(*RocketState) bool
	}{
		{YawLeft, 1, -1, func(rs *RocketState) bool { return rs.LeftRCS }},
		{YawRight, -1, 1, func(rs *RocketState) bool { return rs.RightRCS }},
	}

	for _, tc := range tests {
		world := physics.NewWorld(0)
		r := NewRocket(world, cfg.Rocket)
		r.ApplyYaw(tc.dir)
		world.Step(cfg.Physics.StepSize)

		if r.Body.Velocity().X*tc.vxSign <= 0 {
			t.Errorf("yaw %v: vx = %v has wrong sign", tc.dir, r.Body.Velocity().X)
		}
		if r.Body.AngularVelocity()*tc.spinSign <= 0 {
			t.Errorf("yaw %v: angular velocity %v has wrong sign", tc.dir, r.Body.AngularVelocity())
		}
		if !tc.flagCheck(r.Rocket) {
			t.Errorf("yaw %v: thruster flag not set", tc.dir)
		}
	}
}

func TestAccelerationSignConvention(t *testing.T) {
	g := startedGame(t)
	g.Step(core.NewInputFrame())

	acc := g.Rocket().Rocket.Acceleration
	want := -config.Gravity * config.StepSize
	if math.Abs(acc.Y-want) > 1e-9 {
		t.Errorf("acceleration.y after one free-fall tick = %v, expected previous-minus-current %v", acc.Y, want)
	}
	if acc.X != 0 {
		t.Errorf("acceleration.x = %v, expected 0", acc.X)
	}
}

func TestCheckCrashBoundaries(t *testing.T) {
	limits := config.Default().Crash
	safe := cp.Vector{X: 300, Y: 400}

	tests := []struct {
		name   string
		pos    cp.Vector
		accel  cp.Vector
		crash  bool
		reason CrashReason
	}{
		{"inside", safe, cp.Vector{}, false, CrashNone},
		{"x at right limit", cp.Vector{X: 600, Y: 400}, cp.Vector{}, false, CrashNone},
		{"x just past right limit truncates", cp.Vector{X: 600.9, Y: 400}, cp.Vector{}, false, CrashNone},
		{"x past right limit", cp.Vector{X: 601, Y: 400}, cp.Vector{}, true, CrashRight},
		{"x at left limit", cp.Vector{X: 0, Y: 400}, cp.Vector{}, false, CrashNone},
		{"x slightly negative truncates to zero", cp.Vector{X: -0.5, Y: 400}, cp.Vector{}, false, CrashNone},
		{"x past left limit", cp.Vector{X: -1, Y: 400}, cp.Vector{}, true, CrashLeft},
		{"y at ground", cp.Vector{X: 300, Y: 0}, cp.Vector{}, false, CrashNone},
		{"y below ground", cp.Vector{X: 300, Y: -1}, cp.Vector{}, true, CrashBelow},
		{"accel x at limit", safe, cp.Vector{X: 250}, false, CrashNone},
		{"accel x past limit", safe, cp.Vector{X: 251}, true, CrashImpact},
		{"accel y at negative limit", safe, cp.Vector{Y: -250}, false, CrashNone},
		{"accel y past limit", safe, cp.Vector{Y: 251}, true, CrashImpact},
		{"accel y past negative limit", safe, cp.Vector{Y: -251}, true, CrashImpact},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reason, crashed := CheckCrash(tc.pos, tc.accel, limits)
			if crashed != tc.crash || reason != tc.reason {
				t.Errorf("CheckCrash = (%v, %v), expected (%v, %v)", reason, crashed, tc.reason, tc.crash)
			}
		})
	}
}

func TestFreeFallEndsInExplosion(t *testing.T) {
	sounds := &recordingSounds{}
	g := startedGame(t, WithSounds(sounds))
	rocket := g.Rocket()
	world := g.World()

	if rocket.Body.Position() != (cp.Vector{X: 300, Y: 600}) {
		t.Fatalf("rocket should spawn at (300, 600), got %v", rocket.Body.Position())
	}

	ticks := runUntilGameOver(g, 600)
	if ticks < 0 {
		t.Fatal("free fall never ended the round")
	}
	if g.Outcome().Landed || g.Outcome().Reason != CrashImpact {
		t.Errorf("outcome = %+v, expected an impact crash", g.Outcome())
	}
	if math.Abs(rocket.Rocket.Acceleration.Y) <= 250 {
		t.Errorf("crash tick acceleration.y = %v, expected magnitude > 250", rocket.Rocket.Acceleration.Y)
	}
	if world.Contains(rocket.Body) {
		t.Error("rocket body should be removed from the world")
	}
	for _, e := range g.Entities() {
		if e.Kind == KindRocket {
			t.Error("rocket should not be drawn after the crash")
		}
	}
	if sounds.explosions != 1 {
		t.Errorf("explosion sound played %d times, expected 1", sounds.explosions)
	}

	// Later ticks neither step the world nor touch the rocket.
	steps := world.Steps()
	pos := rocket.Body.Position()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame(core.ActionThrust))
	}
	if world.Steps() != steps {
		t.Errorf("world stepped %d more times after game over", world.Steps()-steps)
	}
	if rocket.Body.Position() != pos {
		t.Error("rocket moved after game over")
	}

	// The blast marks the crash site.
	exp := g.explosion.Body.Position()
	if math.Abs(exp.X-pos.X) > 1e-9 || math.Abs(exp.Y-pos.Y) > 1e-9 {
		t.Errorf("explosion at %v, expected crash site %v", exp, pos)
	}
}

func TestDriftOffScreenCrashes(t *testing.T) {
	g := startedGame(t)
	g.Rocket().Body.SetPosition(cp.Vector{X: 598, Y: 600})
	g.Rocket().Body.SetVelocity(300, 0)

	if runUntilGameOver(g, 10) < 0 {
		t.Fatal("rocket leaving the right edge should crash")
	}
	if g.Outcome().Reason != CrashRight {
		t.Errorf("reason = %v, expected %v", g.Outcome().Reason, CrashRight)
	}
}

func TestRestartBuildsFreshRound(t *testing.T) {
	g := startedGame(t)
	if runUntilGameOver(g, 600) < 0 {
		t.Fatal("round did not end")
	}
	oldWorld, oldRocket := g.World(), g.Rocket()

	g.Step(core.NewInputFrame(core.ActionStart))

	if g.State() != StatePlaying {
		t.Fatalf("start on game over should enter playing, got %v", g.State())
	}
	if g.World() == oldWorld || g.Rocket() == oldRocket {
		t.Error("restart should build a new world and rocket")
	}
	if !g.World().Contains(g.Rocket().Body) {
		t.Error("new rocket should be in the new world")
	}
	if got := len(g.Entities()); got != 3 {
		t.Errorf("fresh round should have rocket, platform and explosion, got %d entities", got)
	}
	if g.Outcome() != (Outcome{}) {
		t.Errorf("outcome should reset, got %+v", g.Outcome())
	}
}

func TestGentleTouchdownLands(t *testing.T) {
	g := startedGame(t)
	cfg := config.Default()
	rocket := g.Rocket()

	// Just above the pad: bottom edge one unit over the segment's top.
	restY := cfg.Platform.Y + cfg.Platform.Radius + cfg.Rocket.Height/2 + 1
	rocket.Body.SetPosition(cp.Vector{X: 300, Y: restY})

	ticks := runUntilGameOver(g, 300)
	if ticks < 0 {
		t.Fatalf("rocket resting on the pad should land, position %v", rocket.Body.Position())
	}
	if !g.Outcome().Landed {
		t.Fatalf("outcome = %+v, expected a landing", g.Outcome())
	}
	if ticks < cfg.Landing.HoldTicks {
		t.Errorf("landed after %d ticks, expected at least %d", ticks, cfg.Landing.HoldTicks)
	}
	if !g.World().Contains(rocket.Body) {
		t.Error("a landed rocket stays in the world")
	}
}

func TestThrustSoundFollowsInput(t *testing.T) {
	sounds := &recordingSounds{}
	g := startedGame(t, WithSounds(sounds))

	g.Step(core.NewInputFrame(core.ActionThrust))
	g.Step(core.NewInputFrame())

	if len(sounds.thrust) != 2 || !sounds.thrust[0] || sounds.thrust[1] {
		t.Errorf("thrust cues = %v, expected [true false]", sounds.thrust)
	}
}

func TestRenderScreens(t *testing.T) {
	g := newTestGame(t)
	dst := core.NewScreen(80, 24)

	g.Render(dst)
	if !strings.Contains(dst.String(), introText) {
		t.Errorf("intro screen should show the welcome text:\n%s", dst.String())
	}

	g.Step(core.NewInputFrame(core.ActionStart))
	g.Render(dst)
	if !strings.Contains(dst.String(), "ALT") {
		t.Errorf("playing screen should show the HUD:\n%s", dst.String())
	}

	runUntilGameOver(g, 600)
	g.Render(dst)
	if !strings.Contains(dst.String(), gameOverText) {
		t.Errorf("game over screen should show the game over text:\n%s", dst.String())
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t)
	dst := core.NewScreen(2, 2)
	g.Render(dst)
	if dst.Width() != 2 {
		t.Error("render should not resize the destination")
	}
}

func TestFieldRectKeepsProportions(t *testing.T) {
	g := newTestGame(t)

	r := g.FieldRect(80, 24)
	if r.H != 22 || r.W != 33 {
		t.Errorf("FieldRect(80, 24) = %+v, expected 33x22", r)
	}
	if r.X != 1+(78-33)/2 || r.Y != 1 {
		t.Errorf("field should be centered, got %+v", r)
	}

	narrow := g.FieldRect(20, 40)
	if narrow.W != 18 || narrow.H != 12 {
		t.Errorf("FieldRect(20, 40) = %+v, expected width-bound 18x12", narrow)
	}
}
