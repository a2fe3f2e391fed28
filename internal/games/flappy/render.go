package flappy

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GrassChar     = '═'
	DirtChar      = '▓'
	DirtAltChar   = '▒'
	BirdChar      = '●'
)

// dirtStripe is the width in world units of one band of the base pattern.
const dirtStripe = 12.0

var phaseGlyphs = [phaseCount]rune{
	PhaseUp:   '▴',
	PhaseMid:  '▶',
	PhaseDown: '▾',
}

// Render draws the current frame into a terminal cell buffer. The world is
// scaled to whatever size dst has.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot into dst.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.Width <= 0 || s.Height <= 0 {
		return
	}
	v := viewport{
		sx: float64(dst.Width()) / float64(s.Width),
		sy: float64(dst.Height()) / float64(s.Height),
	}
	ground := core.FloorInt(s.GroundY)

	for _, p := range s.Pipes {
		drawPipe(dst, v, p, ground)
	}
	drawBase(dst, v, s)
	drawBird(dst, v, s.Bird)

	dst.DrawTextCentered(1, strconv.Itoa(s.Score), core.ColorBrightWhite)

	switch {
	case s.ShowMessage:
		drawCenteredMessage(dst, "GET READY", "Space or click to flap")
	case s.ShowGameOver:
		sub := "Flap to restart"
		if s.ShowHighScore {
			sub = "HIGH SCORE " + DigitString(s.HighScoreDigits) + "  |  " + sub
		}
		drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// viewport maps world units to cells.
type viewport struct {
	sx, sy float64
}

// cells returns the cell rectangle covering a world rectangle. Anything with
// a positive size covers at least one cell.
func (v viewport) cells(r core.Rect) core.Rect {
	if r.W <= 0 || r.H <= 0 {
		return core.Rect{}
	}
	x0 := core.FloorInt(float64(r.X) * v.sx)
	y0 := core.FloorInt(float64(r.Y) * v.sy)
	x1 := int(math.Ceil(float64(r.Right()) * v.sx))
	y1 := int(math.Ceil(float64(r.Bottom()) * v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (v viewport) row(y float64) int {
	return core.FloorInt(y * v.sy)
}

func drawPipe(dst *core.Screen, v viewport, p PipeView, ground int) {
	top := v.cells(p.Top.ClipY(0, ground))
	if top.H > 0 {
		dst.DrawRect(top, PipeChar, core.ColorGreen)
		dst.DrawRect(core.NewRect(top.X, top.Bottom()-1, top.W, 1), PipeCapTop, core.ColorBrightGreen)
	}

	bottom := v.cells(p.Bottom.ClipY(0, ground))
	if bottom.H > 0 {
		dst.DrawRect(bottom, PipeChar, core.ColorGreen)
		dst.DrawRect(core.NewRect(bottom.X, bottom.Y, bottom.W, 1), PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawBase draws the grass line and a dirt pattern anchored to the first
// tile, so it scrolls with the base.
func drawBase(dst *core.Screen, v viewport, s Snapshot) {
	grass := v.row(s.GroundY)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, grass, GrassChar, core.ColorBrightGreen)
	}
	for y := grass + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			wx := float64(x)/v.sx - s.Base.X[0]
			band := int(math.Floor(wx/dirtStripe)) + y
			ch := DirtChar
			if band%2 != 0 {
				ch = DirtAltChar
			}
			dst.SetColor(x, y, ch, core.ColorOrange)
		}
	}
}

func drawBird(dst *core.Screen, v viewport, b BirdView) {
	r := v.cells(core.NewRect(core.FloorInt(b.X), core.FloorInt(b.Y), b.Width, b.Height))
	dst.DrawRect(r, BirdChar, core.ColorYellow)
	glyph := phaseGlyphs[PhaseMid]
	if b.Phase >= 0 && b.Phase < phaseCount {
		glyph = phaseGlyphs[b.Phase]
	}
	dst.SetColor(r.Right()-1, r.Y, glyph, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorBrightWhite)
}
