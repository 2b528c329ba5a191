package assets

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestParseFrame(t *testing.T) {
	f, err := ParseFrame(" /\\\r\n/__\\\n\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if f.W != 4 || f.H != 2 {
		t.Fatalf("frame is %dx%d, expected 4x2", f.W, f.H)
	}
	if f.At(3, 0) != ' ' {
		t.Error("short rows should be padded with spaces")
	}
	if f.At(0, 1) != '/' || f.At(-1, 0) != ' ' || f.At(0, 5) != ' ' {
		t.Error("At returned wrong runes")
	}
}

func TestParseFrameEmpty(t *testing.T) {
	if _, err := ParseFrame("\n  \n"); !errors.Is(err, ErrBadManifest) {
		t.Errorf("expected ErrBadManifest, got %v", err)
	}
}

func TestSpriteFrameWraps(t *testing.T) {
	a, _ := ParseFrame("a")
	b, _ := ParseFrame("b")
	s := &Sprite{Frames: []*Frame{a, b}}

	if s.Frame(0) != a || s.Frame(3) != b || s.Frame(-1) != b {
		t.Error("Frame should wrap around in both directions")
	}
	if (&Sprite{}).Frame(2) != nil {
		t.Error("empty sprite should return nil frame")
	}
}

func TestDrawStretched(t *testing.T) {
	f, _ := ParseFrame("ab")
	dst := core.NewScreen(6, 2)
	DrawStretched(dst, f, core.NewRect(1, 0, 4, 2), core.ColorGreen)

	expected := " aabb \n aabb "
	if got := dst.String(); got != expected {
		t.Errorf("got\n%q\nexpected\n%q", got, expected)
	}
	if dst.GetCell(1, 0).Color != core.ColorGreen {
		t.Error("stretched cells should carry the sprite color")
	}
}

func TestDrawStretchedTransparent(t *testing.T) {
	f, _ := ParseFrame("x x")
	dst := core.NewScreen(3, 1)
	dst.DrawText(0, 0, "ooo", core.ColorDefault)
	DrawStretched(dst, f, dst.Bounds(), core.ColorDefault)

	if got := dst.Row(0); got != "xox" {
		t.Errorf("spaces should be transparent, got %q", got)
	}
}

func TestDrawTransformedUpright(t *testing.T) {
	f, _ := ParseFrame("A\nB")
	vp := core.Viewport{WorldW: 10, WorldH: 10, Cols: 10, Rows: 10}
	dst := core.NewScreen(10, 10)

	DrawTransformed(dst, vp, f, Transform{X: 5.5, Y: 5, W: 1, H: 2}, core.ColorWhite)

	if dst.Get(5, 4) != 'A' || dst.Get(5, 5) != 'B' {
		t.Errorf("upright frame drawn wrong:\n%s", dst.String())
	}
}

func TestDrawTransformedUpsideDown(t *testing.T) {
	f, _ := ParseFrame("A\nB")
	vp := core.Viewport{WorldW: 10, WorldH: 10, Cols: 10, Rows: 10}
	dst := core.NewScreen(10, 10)

	DrawTransformed(dst, vp, f, Transform{X: 5.5, Y: 5, W: 1, H: 2, Angle: math.Pi}, core.ColorWhite)

	if dst.Get(5, 4) != 'B' || dst.Get(5, 5) != 'A' {
		t.Errorf("rotated frame drawn wrong:\n%s", dst.String())
	}
}

func TestTransformOffset(t *testing.T) {
	base := Transform{X: 100, Y: 100, W: 10, H: 20}

	below := base.Offset(0, -15, 4, 4)
	if below.X != 100 || below.Y != 115 {
		t.Errorf("offset below = (%v, %v), expected (100, 115)", below.X, below.Y)
	}

	base.Angle = math.Pi / 2
	side := base.Offset(0, -15, 4, 4)
	if math.Abs(side.X-115) > 1e-9 || math.Abs(side.Y-100) > 1e-9 {
		t.Errorf("rotated offset = (%v, %v), expected (115, 100)", side.X, side.Y)
	}
}
