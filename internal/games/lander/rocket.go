package lander

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// Yaw selects which side thruster fires.
type Yaw int

const (
	// YawLeft fires the left-side thruster, pushing the nose towards +X.
	YawLeft Yaw = iota
	// YawRight fires the right-side thruster, pushing the nose towards -X.
	YawRight
)

// RocketState is the rocket-only part of an Entity.
type RocketState struct {
	cfg config.RocketConfig

	PrevVelocity cp.Vector
	// Acceleration is PrevVelocity minus the current velocity. The sign is
	// inverted relative to a true acceleration; crash limits use magnitudes.
	Acceleration cp.Vector

	// Thrusters fired during the current frame.
	Thrusting bool
	LeftRCS   bool
	RightRCS  bool
}

// NewRocket builds the rocket at its spawn point and adds it to the world.
func NewRocket(world *physics.World, rc config.RocketConfig) *Entity {
	body, shape := physics.NewBox(rc.Mass, rc.Width, rc.Height)
	body.SetPosition(cp.Vector{X: rc.StartX, Y: rc.StartY})
	shape.SetElasticity(rc.Elasticity)
	world.Add(body, shape)

	return &Entity{
		Kind:   KindRocket,
		Body:   body,
		Shape:  shape,
		Size:   cp.Vector{X: rc.Width, Y: rc.Height},
		Rocket: &RocketState{cfg: rc},
	}
}

// ApplyThrust pushes along the rocket's own +Y axis from its center. The
// velocity changes on the next physics step.
func (e *Entity) ApplyThrust() {
	e.Body.ApplyForceAtLocalPoint(cp.Vector{X: 0, Y: e.Rocket.cfg.ThrustForce}, cp.Vector{})
	e.Rocket.Thrusting = true
}

// ApplyYaw fires a side thruster above the center of mass, which both pushes
// and turns the rocket.
func (e *Entity) ApplyYaw(dir Yaw) {
	force := e.Rocket.cfg.RCSForce
	if dir == YawRight {
		force = -force
		e.Rocket.RightRCS = true
	} else {
		e.Rocket.LeftRCS = true
	}
	e.Body.ApplyForceAtLocalPoint(cp.Vector{X: force, Y: 0}, cp.Vector{X: 0, Y: e.Rocket.cfg.RCSOffsetY})
}

// ResetThrusters clears the per-frame thruster flags.
func (e *Entity) ResetThrusters() {
	e.Rocket.Thrusting = false
	e.Rocket.LeftRCS = false
	e.Rocket.RightRCS = false
}

// Firing reports whether any thruster fired this frame.
func (e *Entity) Firing() bool {
	return e.Rocket.Thrusting || e.Rocket.LeftRCS || e.Rocket.RightRCS
}

// StoreVelocity snapshots the current velocity. Called once per frame before
// the physics step.
func (e *Entity) StoreVelocity() {
	e.Rocket.PrevVelocity = e.Body.Velocity()
}

// UpdateAcceleration derives the frame's velocity delta from the snapshot
// taken before the step.
func (e *Entity) UpdateAcceleration() {
	v := e.Body.Velocity()
	e.Rocket.Acceleration = cp.Vector{
		X: e.Rocket.PrevVelocity.X - v.X,
		Y: e.Rocket.PrevVelocity.Y - v.Y,
	}
}
