package lander

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-lander/internal/assets"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Messages shown on the intro and game over screens.
const (
	introTitle    = "LANDER"
	introText     = "Welcome to Lander! press S to start Q to quit"
	gameOverTitle = "GAME OVER"
	landedTitle   = "LANDED"
	gameOverText  = "Game over! Thanks for playing. Press S to start or Q to quit"
)

// cellAspect is the height of a terminal cell divided by its width.
const cellAspect = 2.0

// Animation speed, in ticks per frame.
const (
	thrustFrameTicks    = 4
	explosionFrameTicks = 8
)

type spriteSet struct {
	rocket, thrust, leftRCS, rightRCS *assets.Sprite
	platform, explosion, sky          *assets.Sprite
}

func resolveSprites(lib *assets.Library) (spriteSet, error) {
	if lib == nil {
		return spriteSet{}, fmt.Errorf("%w: no sprite library", assets.ErrMissingAsset)
	}
	var set spriteSet
	targets := []struct {
		name string
		dst  **assets.Sprite
	}{
		{assets.SpriteRocket, &set.rocket},
		{assets.SpriteThrust, &set.thrust},
		{assets.SpriteLeftRCS, &set.leftRCS},
		{assets.SpriteRightRCS, &set.rightRCS},
		{assets.SpritePlatform, &set.platform},
		{assets.SpriteExplosion, &set.explosion},
		{assets.SpriteSky, &set.sky},
	}
	for _, t := range targets {
		s, err := lib.Sprite(t.name)
		if err != nil {
			return spriteSet{}, err
		}
		*t.dst = s
	}
	return set, nil
}

// drawFuncs is the per-kind draw pass.
var drawFuncs = [...]func(g *Game, dst *core.Screen, vp core.Viewport, e *Entity){
	KindRocket:    drawRocket,
	KindPlatform:  drawPlatform,
	KindExplosion: drawExplosion,
}

// FieldRect returns where the play field sits inside a w×h screen: the
// largest box that keeps the world's proportions, centered, inside a one-cell
// border.
func (g *Game) FieldRect(w, h int) core.Rect {
	innerW, innerH := w-2, h-2
	if innerW <= 0 || innerH <= 0 {
		return core.Rect{}
	}
	ratio := g.cfg.World.Width / g.cfg.World.Height * cellAspect // columns per row

	fieldH := innerH
	fieldW := int(math.Round(float64(fieldH) * ratio))
	if fieldW > innerW {
		fieldW = innerW
		fieldH = max(int(math.Round(float64(fieldW)/ratio)), 1)
	}
	fieldW = max(fieldW, 1)
	return core.NewRect(1+(innerW-fieldW)/2, 1+(innerH-fieldH)/2, fieldW, fieldH)
}

// Render draws the current frame: background, then entities in list order,
// then any overlay text.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	field := g.FieldRect(dst.Width(), dst.Height())
	if field.W == 0 || field.H == 0 {
		dst.DrawText(0, 0, "terminal too small", g.cfg.Colors.HUD)
		return
	}

	g.field.Resize(field.W, field.H)
	g.field.Clear()
	vp := core.Viewport{
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		Cols:   field.W,
		Rows:   field.H,
	}

	assets.DrawStretched(g.field, g.sprites.sky.Frame(0), g.field.Bounds(), g.sprites.sky.Color)

	switch g.state {
	case StatePlaying:
		g.drawEntities(vp)
		g.drawHUD()
	case StateGameOver:
		g.drawEntities(vp)
	}

	dst.DrawBox(core.NewRect(field.X-1, field.Y-1, field.W+2, field.H+2), g.cfg.Colors.HUD)
	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			cell := g.field.GetCell(x, y)
			dst.SetColored(field.X+x, field.Y+y, cell.Rune, cell.Color)
		}
	}

	// Messages span the whole screen; the field is usually narrower.
	switch {
	case g.state == StateIntro:
		drawMessage(dst, introTitle, introText, g.cfg.Colors.IntroText)
	case g.state == StateGameOver && g.outcome.Landed:
		drawMessage(dst, landedTitle, gameOverText, g.cfg.Colors.LandedText)
	case g.state == StateGameOver:
		drawMessage(dst, gameOverTitle+": "+g.outcome.Reason.String(), gameOverText, g.cfg.Colors.GameOverText)
	}
}

func (g *Game) drawEntities(vp core.Viewport) {
	for _, e := range g.entities {
		drawFuncs[e.Kind](g, g.field, vp, e)
	}
}

func entityTransform(e *Entity) assets.Transform {
	return assets.Transform{
		X:     e.Visual.X,
		Y:     e.Visual.Y,
		W:     e.Size.X,
		H:     e.Size.Y,
		Angle: e.Visual.Angle,
	}
}

func drawRocket(g *Game, dst *core.Screen, vp core.Viewport, e *Entity) {
	t := entityTransform(e)
	s := g.sprites

	assets.DrawTransformed(dst, vp, s.rocket.Frame(0), t, s.rocket.Color)

	rs := e.Rocket
	if rs.Thrusting {
		flame := t.Offset(0, -t.H/2-40, t.W*0.6, 80)
		assets.DrawTransformed(dst, vp, s.thrust.Frame(g.frame/thrustFrameTicks), flame, s.thrust.Color)
	}
	if rs.LeftRCS {
		puff := t.Offset(-t.W/2-25, rs.cfg.RCSOffsetY, 50, 40)
		assets.DrawTransformed(dst, vp, s.leftRCS.Frame(g.frame/thrustFrameTicks), puff, s.leftRCS.Color)
	}
	if rs.RightRCS {
		puff := t.Offset(t.W/2+25, rs.cfg.RCSOffsetY, 50, 40)
		assets.DrawTransformed(dst, vp, s.rightRCS.Frame(g.frame/thrustFrameTicks), puff, s.rightRCS.Color)
	}
}

// drawPlatform stretches the pad over every cell it touches so it stays
// visible even when thinner than a row.
func drawPlatform(g *Game, dst *core.Screen, vp core.Viewport, e *Entity) {
	x0, y0 := vp.ToCell(e.Visual.X-e.Size.X/2, e.Visual.Y-e.Size.Y/2)
	x1, y1 := vp.ToCell(e.Visual.X+e.Size.X/2, e.Visual.Y+e.Size.Y/2)
	r := core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
	assets.DrawStretched(dst, g.sprites.platform.Frame(0), r, g.sprites.platform.Color)
}

// drawExplosion only shows the blast after a crash.
func drawExplosion(g *Game, dst *core.Screen, vp core.Viewport, e *Entity) {
	if g.state != StateGameOver || g.outcome.Landed {
		return
	}
	s := g.sprites.explosion
	assets.DrawTransformed(dst, vp, s.Frame(g.frame/explosionFrameTicks), entityTransform(e), s.Color)
}

func (g *Game) drawHUD() {
	rocket := g.rocket
	pos := rocket.Body.Position()
	vel := rocket.Body.Velocity()
	acc := rocket.Rocket.Acceleration

	lines := []string{
		fmt.Sprintf("ALT %4.0f  X %4.0f", pos.Y, pos.X),
		fmt.Sprintf("VEL %+6.1f %+6.1f", vel.X, vel.Y),
		fmt.Sprintf("ACC %+6.1f %+6.1f", acc.X, acc.Y),
	}
	for i, line := range lines {
		g.field.DrawText(1, i, line, g.cfg.Colors.HUD)
	}
}

// drawMessage draws a boxed two-line message in the middle of the screen.
// Lines longer than the screen are clipped.
func drawMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleLen := utf8.RuneCountInString(title)
	subLen := utf8.RuneCountInString(subtitle)

	boxW := min(max(titleLen, subLen)+4, dst.Width())
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawText(max(box.X+(box.W-titleLen)/2, 0), box.Y+1, title, c)
	dst.DrawText(max(box.X+(box.W-subLen)/2, 0), box.Y+3, subtitle, c)
}
