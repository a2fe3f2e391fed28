// Package window runs the game in a desktop window with ebiten. The world is
// drawn 1:1 and the window scales it.
package window

import (
	"errors"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Game is what the window loop drives.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Snapshot() flappy.Snapshot
}

var (
	skyColor      = color.RGBA{78, 192, 202, 255}
	pipeColor     = color.RGBA{84, 176, 52, 255}
	pipeCapColor  = color.RGBA{116, 212, 72, 255}
	grassColor    = color.RGBA{120, 200, 60, 255}
	dirtColor     = color.RGBA{222, 216, 148, 255}
	dirtAltColor  = color.RGBA{206, 196, 120, 255}
	birdColor     = color.RGBA{250, 220, 40, 255}
	wingColor     = color.RGBA{255, 250, 220, 255}
	eyeColor      = color.RGBA{0, 0, 0, 255}
	textColor     = color.RGBA{255, 255, 255, 255}
	shadowColor   = color.RGBA{0, 0, 0, 160}
	gameOverColor = color.RGBA{230, 90, 40, 255}
)

const (
	pipeCapHeight = 12
	grassHeight   = 8
	dirtStripe    = 12
)

var flapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}

var pointerButtons = []struct {
	mouse   ebiten.MouseButton
	pointer core.PointerButton
}{
	{ebiten.MouseButtonLeft, core.ButtonLeft},
	{ebiten.MouseButtonMiddle, core.ButtonMiddle},
	{ebiten.MouseButtonRight, core.ButtonRight},
}

// Window implements ebiten.Game.
type Window struct {
	game   Game
	sink   audio.Sink
	logger *log.Logger
	face   font.Face

	width, height int
	birds         map[flappy.Phase]*ebiten.Image
	frame         core.InputFrame
	last          time.Time
	gameOver      bool
}

// New creates a window for the given game. The game must already be reset.
func New(game Game, sink audio.Sink, cfg config.FlappyConfig, logger *log.Logger) *Window {
	if sink == nil {
		sink = audio.Nop{}
	}
	return &Window{
		game:   game,
		sink:   sink,
		logger: logger,
		face:   basicfont.Face7x13,
		width:  cfg.Screen.Width,
		height: cfg.Screen.Height,
		frame:  core.NewInputFrame(),
	}
}

// Update reads input and advances the game by one tick.
func (w *Window) Update() error {
	now := time.Now()
	w.frame.Clear()
	if !w.last.IsZero() {
		w.frame.Elapsed = now.Sub(w.last)
	}
	w.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.frame.Set(core.ActionQuit)
	}
	for _, k := range flapKeys {
		if inpututil.IsKeyJustPressed(k) {
			w.frame.Set(core.ActionFlapKey)
			break
		}
	}
	for _, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			w.frame.Push(core.Event{Action: core.ActionFlapPointer, Button: b.pointer})
		}
	}

	result := w.game.Step(w.frame)
	for _, c := range result.Cues {
		w.sink.Play(c)
	}
	if result.State.GameOver && !w.gameOver {
		w.logger.Info("game over", "score", result.State.Score, "high_score", result.State.HighScore)
	}
	w.gameOver = result.State.GameOver

	if result.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	s := w.game.Snapshot()
	screen.Fill(skyColor)

	for _, p := range s.Pipes {
		drawPipe(screen, p, s.GroundY)
	}
	drawBase(screen, s)
	w.drawBird(screen, s.Bird)

	w.drawCentered(screen, strconv.Itoa(s.Score), 40, textColor)
	switch {
	case s.ShowMessage:
		w.drawCentered(screen, "GET READY", s.Height/3, textColor)
		w.drawCentered(screen, "Space or click to flap", s.Height/3+20, textColor)
	case s.ShowGameOver:
		w.drawCentered(screen, "GAME OVER", s.Height/3, gameOverColor)
		if s.ShowHighScore {
			w.drawCentered(screen, "HIGH SCORE", s.Height/3+30, textColor)
			w.drawCentered(screen, flappy.DigitString(s.HighScoreDigits), s.Height/3+48, textColor)
		}
	}
}

// Layout returns the world size; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

func drawPipe(dst *ebiten.Image, p flappy.PipeView, groundY float64) {
	ground := core.FloorInt(groundY)
	top := p.Top.ClipY(0, ground)
	if top.H > 0 {
		fillRect(dst, top, pipeColor)
		fillRect(dst, core.NewRect(top.X-2, top.Bottom()-pipeCapHeight, top.W+4, pipeCapHeight), pipeCapColor)
	}
	bottom := p.Bottom.ClipY(0, ground)
	if bottom.H > 0 {
		fillRect(dst, bottom, pipeColor)
		fillRect(dst, core.NewRect(bottom.X-2, bottom.Y, bottom.W+4, pipeCapHeight), pipeCapColor)
	}
}

func drawBase(dst *ebiten.Image, s flappy.Snapshot) {
	h := float32(s.Height) - float32(s.Base.Y)
	for _, x := range s.Base.X {
		vector.DrawFilledRect(dst, float32(x), float32(s.Base.Y), float32(s.Base.TileWidth), h, dirtColor, false)
		for off := 0.0; off < s.Base.TileWidth; off += 2 * dirtStripe {
			vector.DrawFilledRect(dst, float32(x+off), float32(s.Base.Y)+grassHeight, dirtStripe, h, dirtAltColor, false)
		}
		vector.DrawFilledRect(dst, float32(x), float32(s.Base.Y), float32(s.Base.TileWidth), grassHeight, grassColor, false)
	}
}

// drawBird draws the phase sprite rotated about its center.
func (w *Window) drawBird(dst *ebiten.Image, b flappy.BirdView) {
	img := w.birdImage(b.Phase, b.Width, b.Height)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(b.Width)/2, -float64(b.Height)/2)
	// Positive tilt is nose up, which is counterclockwise on screen.
	op.GeoM.Rotate(-b.Tilt * math.Pi / 180)
	op.GeoM.Translate(b.X+float64(b.Width)/2, b.Y+float64(b.Height)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
}

// birdImage returns the sprite for a phase, drawing it on first use.
func (w *Window) birdImage(p flappy.Phase, width, height int) *ebiten.Image {
	if img, ok := w.birds[p]; ok {
		return img
	}
	if w.birds == nil {
		w.birds = make(map[flappy.Phase]*ebiten.Image)
	}

	img := ebiten.NewImage(width, height)
	fw, fh := float32(width), float32(height)
	vector.DrawFilledRect(img, 0, fh*0.15, fw, fh*0.7, birdColor, false)
	vector.DrawFilledRect(img, fw*0.7, fh*0.25, fw*0.12, fh*0.15, eyeColor, false)
	vector.DrawFilledRect(img, fw*0.85, fh*0.45, fw*0.15, fh*0.15, gameOverColor, false)

	wingY := fh * 0.45
	switch p {
	case flappy.PhaseUp:
		wingY = fh * 0.15
	case flappy.PhaseDown:
		wingY = fh * 0.65
	}
	vector.DrawFilledRect(img, fw*0.1, wingY, fw*0.4, fh*0.2, wingColor, false)

	w.birds[p] = img
	return img
}

func (w *Window) drawCentered(dst *ebiten.Image, s string, y int, clr color.Color) {
	x := (w.width - font.MeasureString(w.face, s).Ceil()) / 2
	text.Draw(dst, s, w.face, x+1, y+1, shadowColor)
	text.Draw(dst, s, w.face, x, y, clr)
}

func fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// Run opens the window and blocks until the player quits.
func Run(game Game, sink audio.Sink, cfg config.FlappyConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	scale := cfg.Display.Scale
	if scale < 1 {
		scale = 1
	}

	ebiten.SetWindowSize(cfg.Screen.Width*scale, cfg.Screen.Height*scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizable(false)
	ebiten.SetFullscreen(cfg.Display.Fullscreen)
	ebiten.SetTPS(rc.TickRate)

	game.Reset(rc)
	err := ebiten.RunGame(New(game, sink, cfg, logger))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
