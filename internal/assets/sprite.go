package assets

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Sprite is a named, colored sequence of animation frames.
type Sprite struct {
	Name   string
	Color  core.Color
	Frames []*Frame
}

// Frame returns frame i, wrapping around so callers can pass a tick counter.
func (s *Sprite) Frame(i int) *Frame {
	if len(s.Frames) == 0 {
		return nil
	}
	i %= len(s.Frames)
	if i < 0 {
		i += len(s.Frames)
	}
	return s.Frames[i]
}

// Frame is a rectangular block of text art. Spaces are transparent.
type Frame struct {
	W, H int
	rows [][]rune
}

// ParseFrame reads text art, padding short lines so every row is W wide.
// Trailing blank lines are dropped.
func ParseFrame(text string) (*Frame, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty frame", ErrBadManifest)
	}

	f := &Frame{H: len(lines)}
	for _, line := range lines {
		f.W = max(f.W, utf8.RuneCountInString(line))
	}
	f.rows = make([][]rune, f.H)
	for y, line := range lines {
		row := make([]rune, 0, f.W)
		row = append(row, []rune(line)...)
		for len(row) < f.W {
			row = append(row, ' ')
		}
		f.rows[y] = row
	}
	return f, nil
}

// At returns the rune at (x, y), or space outside the frame.
func (f *Frame) At(x, y int) rune {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return ' '
	}
	return f.rows[y][x]
}

// Sample returns the rune at normalized coordinates u, v in [0, 1).
// (0, 0) is the top-left corner of the art.
func (f *Frame) Sample(u, v float64) (rune, bool) {
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return ' ', false
	}
	return f.At(int(u*float64(f.W)), int(v*float64(f.H))), true
}

// DrawStretched scales the frame to fill r on the screen.
func DrawStretched(dst *core.Screen, f *Frame, r core.Rect, c core.Color) {
	if f == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		v := (float64(y-r.Y) + 0.5) / float64(r.H)
		for x := r.X; x < r.Right(); x++ {
			u := (float64(x-r.X) + 0.5) / float64(r.W)
			if ch, ok := f.Sample(u, v); ok && ch != ' ' {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
}

// Transform places a frame in the world. X and Y are the center in screen
// space (origin top-left, Y down); Angle is the physics rotation in radians,
// counter-clockwise positive.
type Transform struct {
	X, Y  float64
	W, H  float64
	Angle float64
}

// Offset returns a transform of size w×h whose center sits at the local
// point (lx, ly) of t, where local +Y points towards the top of the art.
func (t Transform) Offset(lx, ly, w, h float64) Transform {
	sin, cos := math.Sincos(t.Angle)
	dx := lx*cos - ly*sin
	dyUp := lx*sin + ly*cos
	return Transform{X: t.X + dx, Y: t.Y - dyUp, W: w, H: h, Angle: t.Angle}
}

// DrawTransformed rasterizes the frame under t into the cells of vp.
func DrawTransformed(dst *core.Screen, vp core.Viewport, f *Frame, t Transform, c core.Color) {
	if f == nil || t.W <= 0 || t.H <= 0 {
		return
	}
	radius := math.Hypot(t.W, t.H) / 2
	minCol, minRow := vp.ToCell(t.X-radius, t.Y-radius)
	maxCol, maxRow := vp.ToCell(t.X+radius, t.Y+radius)
	minCol, minRow = max(minCol, 0), max(minRow, 0)
	maxCol, maxRow = min(maxCol, dst.Width()-1), min(maxRow, dst.Height()-1)

	sin, cos := math.Sincos(t.Angle)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			wx, wy := vp.CellCenter(col, row)
			dx := wx - t.X
			dyUp := t.Y - wy
			lx := dx*cos + dyUp*sin
			ly := -dx*sin + dyUp*cos
			if ch, ok := f.Sample(lx/t.W+0.5, 0.5-ly/t.H); ok && ch != ' ' {
				dst.SetColored(col, row, ch, c)
			}
		}
	}
}
