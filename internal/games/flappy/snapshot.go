package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BirdView is the bird as the renderer sees it.
type BirdView struct {
	X, Y          float64
	Width, Height int
	Tilt          float64 // degrees, positive is nose up
	Phase         Phase
}

// PipeView is one pipe with its two rectangles already resolved.
type PipeView struct {
	X      float64
	GapY   int
	Top    core.Rect
	Bottom core.Rect
}

// Snapshot is a read-only copy of everything a frontend needs to draw one
// frame. Holding on to it never affects the game.
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	Width   int // world units
	Height  int
	GroundY float64

	Bird  BirdView
	Pipes []PipeView
	Base  Base

	Score           int
	HighScore       int
	ScoreDigits     []int
	HighScoreDigits []int

	ShowMessage   bool // waiting for the first flap
	ShowGameOver  bool
	ShowHighScore bool
}

// Snapshot returns the current render view.
func (g *Game) Snapshot() Snapshot {
	geom := g.pipes.Geometry()
	pipes := make([]PipeView, 0, g.pipes.Len())
	for _, p := range g.pipes.pipes {
		pipes = append(pipes, PipeView{
			X:      p.X,
			GapY:   p.GapY,
			Top:    p.TopRect(geom),
			Bottom: p.BottomRect(geom),
		})
	}

	tilt := 0.0
	if g.mode != ModeWaiting {
		tilt = Tilt(g.bird.Velocity, g.cfg.Physics.TiltFactor, g.cfg.Physics.MaxTilt)
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    g.mode,
		Width:   g.cfg.Screen.Width,
		Height:  g.cfg.Screen.Height,
		GroundY: g.cfg.GroundY(),
		Bird: BirdView{
			X:      g.bird.X,
			Y:      g.bird.Y,
			Width:  g.bird.Width,
			Height: g.bird.Height,
			Tilt:   tilt,
			Phase:  g.phase(),
		},
		Pipes:           pipes,
		Base:            g.base,
		Score:           g.score,
		HighScore:       g.highScore,
		ScoreDigits:     core.Digits(g.score),
		HighScoreDigits: core.Digits(g.highScore),
		ShowMessage:     g.mode == ModeWaiting,
		ShowGameOver:    g.mode == ModeGameOver,
		ShowHighScore:   g.mode == ModeGameOver,
	}
}

// DigitString joins decimal digits back into text.
func DigitString(digits []int) string {
	buf := make([]byte, 0, len(digits))
	for _, d := range digits {
		buf = append(buf, byte('0'+d))
	}
	return string(buf)
}
