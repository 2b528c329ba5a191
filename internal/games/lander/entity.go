package lander

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// Kind tags the variant an Entity holds.
type Kind int

const (
	KindRocket Kind = iota
	KindPlatform
	KindExplosion
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindRocket:
		return "rocket"
	case KindPlatform:
		return "platform"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Visual is an entity's on-screen transform in world units, origin top-left,
// Y growing downwards.
type Visual struct {
	X, Y  float64
	Angle float64 // Physics rotation, radians, counter-clockwise
}

// Entity pairs a physics body with its visual. The body belongs to the
// physics world; the entity only references it.
type Entity struct {
	Kind   Kind
	Body   *cp.Body
	Shape  *cp.Shape
	Size   cp.Vector
	Visual Visual

	// Rocket is set only for KindRocket.
	Rocket *RocketState
}

// syncFuncs is the per-kind sync pass run after every physics step.
var syncFuncs = [...]func(e *Entity, worldH float64){
	KindRocket:    syncRocket,
	KindPlatform:  syncStatic,
	KindExplosion: syncStatic,
}

// Sync runs the per-kind update for this entity.
func (e *Entity) Sync(worldH float64) {
	syncFuncs[e.Kind](e, worldH)
}

// SyncVisual copies the body's position and angle into the visual transform,
// flipping physics Y (up) into screen Y (down).
func (e *Entity) SyncVisual(worldH float64) {
	pos := e.Body.Position()
	e.Visual = Visual{
		X:     pos.X,
		Y:     ToScreenY(worldH, pos.Y),
		Angle: e.Body.Angle(),
	}
}

func syncStatic(e *Entity, worldH float64) {
	e.SyncVisual(worldH)
}

func syncRocket(e *Entity, worldH float64) {
	e.SyncVisual(worldH)
	e.UpdateAcceleration()
}

// ToScreenY converts a physics Y (origin bottom, up) to a screen Y (origin top, down).
func ToScreenY(worldH, physicsY float64) float64 {
	return worldH - physicsY
}

// ToPhysicsY converts a screen Y back to physics space.
func ToPhysicsY(worldH, screenY float64) float64 {
	return worldH - screenY
}

// NewPlatform builds the static landing pad and adds it to the world. The
// body sits at the pad's center so its visual lands there too.
func NewPlatform(world *physics.World, pc config.PlatformConfig) *Entity {
	center := cp.Vector{X: (pc.X1 + pc.X2) / 2, Y: pc.Y}
	half := (pc.X2 - pc.X1) / 2

	body, shape := physics.NewStaticSegment(cp.Vector{X: -half, Y: 0}, cp.Vector{X: half, Y: 0}, pc.Radius)
	body.SetPosition(center)
	shape.SetFriction(pc.Friction)
	world.Add(body, shape)

	return &Entity{
		Kind:  KindPlatform,
		Body:  body,
		Shape: shape,
		Size:  cp.Vector{X: pc.X2 - pc.X1, Y: 2 * pc.Radius},
	}
}

// explosionSize is the drawn size of the blast in world units.
const explosionSize = 300

// NewExplosion builds the static blast marker. Its shape is a sensor so it
// never takes part in collisions while the round is running.
func NewExplosion(world *physics.World, wc config.WorldConfig) *Entity {
	body, shape := physics.NewStaticSensorBox(explosionSize, explosionSize)
	body.SetPosition(cp.Vector{X: wc.Width / 2, Y: wc.Height / 2})
	world.Add(body, shape)

	return &Entity{
		Kind:  KindExplosion,
		Body:  body,
		Shape: shape,
		Size:  cp.Vector{X: explosionSize, Y: explosionSize},
	}
}
