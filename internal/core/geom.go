// Package core provides the terminal-independent building blocks shared by the
// game and the platform layer: the cell screen, colors, geometry helpers and
// per-frame input. It has no dependency on Bubble Tea so game logic stays
// testable without a terminal.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w×h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Viewport maps a world measured in continuous units onto a grid of cells.
// Both spaces use a top-left origin with Y growing downwards.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// CellW returns the number of world units covered by one column.
func (v Viewport) CellW() float64 {
	if v.Cols <= 0 {
		return 0
	}
	return v.WorldW / float64(v.Cols)
}

// CellH returns the number of world units covered by one row.
func (v Viewport) CellH() float64 {
	if v.Rows <= 0 {
		return 0
	}
	return v.WorldH / float64(v.Rows)
}

// ToCell converts a world point to the cell that contains it.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	cw, ch := v.CellW(), v.CellH()
	if cw == 0 || ch == 0 {
		return 0, 0
	}
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// CellCenter returns the world point at the center of a cell.
func (v Viewport) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.CellW(), (float64(row) + 0.5) * v.CellH()
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
