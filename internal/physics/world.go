// Package physics wraps a Chipmunk space as the game's physics world. The
// world owns every body and shape added to it; entities only keep handles.
package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

// ErrNotInWorld is returned when removing a body the world does not hold.
var ErrNotInWorld = errors.New("body not in world")

// World is a fixed-timestep rigid-body simulation.
type World struct {
	space *cp.Space
	steps int
}

// NewWorld creates an empty world with a vertical gravity (negative is down).
func NewWorld(gravity float64) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &World{space: space}
}

// Gravity returns the world's gravity vector.
func (w *World) Gravity() cp.Vector {
	return w.space.Gravity()
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
	w.steps++
}

// Steps returns how many times the world has been stepped.
func (w *World) Steps() int {
	return w.steps
}

// Add inserts a body and its collision shape.
func (w *World) Add(body *cp.Body, shape *cp.Shape) {
	w.space.AddBody(body)
	w.space.AddShape(shape)
}

// Remove takes a body and its shape out of the world. Removing a body that is
// not in the world returns ErrNotInWorld and leaves the world untouched.
func (w *World) Remove(body *cp.Body, shape *cp.Shape) error {
	if !w.space.ContainsBody(body) {
		return fmt.Errorf("remove: %w", ErrNotInWorld)
	}
	if w.space.ContainsShape(shape) {
		w.space.RemoveShape(shape)
	}
	w.space.RemoveBody(body)
	return nil
}

// Contains reports whether the body is part of this world.
func (w *World) Contains(body *cp.Body) bool {
	return w.space.ContainsBody(body)
}

// Move repositions a static body together with its shape. The shape is
// re-added so its bounding box and index entry follow the body.
func (w *World) Move(body *cp.Body, shape *cp.Shape, pos cp.Vector) {
	body.SetPosition(pos)
	if w.space.ContainsShape(shape) {
		w.space.RemoveShape(shape)
		w.space.AddShape(shape)
	}
}

// Touching reports whether body currently has a contact with shape.
func Touching(body *cp.Body, shape *cp.Shape) bool {
	touching := false
	body.EachArbiter(func(arb *cp.Arbiter) {
		a, b := arb.Shapes()
		if a == shape || b == shape {
			touching = true
		}
	})
	return touching
}

// NewBox creates a dynamic body with a box shape of the given size.
func NewBox(mass, width, height float64) (*cp.Body, *cp.Shape) {
	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	shape := cp.NewBox(body, width, height, 0)
	return body, shape
}

// NewStaticSegment creates a static body carrying a segment from a to b.
func NewStaticSegment(a, b cp.Vector, radius float64) (*cp.Body, *cp.Shape) {
	body := cp.NewStaticBody()
	shape := cp.NewSegment(body, a, b, radius)
	return body, shape
}

// NewStaticSensorBox creates a static body carrying a box that reports
// overlaps but never produces collision response.
func NewStaticSensorBox(width, height float64) (*cp.Body, *cp.Shape) {
	body := cp.NewStaticBody()
	shape := cp.NewBox(body, width, height, 0)
	shape.SetSensor(true)
	return body, shape
}
