// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Mode is the state machine's current state.
type Mode int

const (
	ModeWaiting Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWaiting:
		return "waiting"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	store   HighScoreStore
	logger  *log.Logger

	mode      Mode
	bird      Bird
	pipes     *PipeManager
	base      Base
	score     int
	highScore int

	gapRng *rand.Rand // pipe gap heights
	cueRng *rand.Rand // pointer flap sound variants

	clock    time.Duration // wall-clock time accumulated since Reset
	tick     uint64
	wings    wingCycle
	override flapOverride
	cues     []core.Cue
}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the built-in tuning.
func WithConfig(cfg config.FlappyConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithHighScoreStore sets where the high score is loaded from and saved to.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) {
		if s != nil {
			g.store = s
		}
	}
}

// WithLogger sets the logger for state transitions and store failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a new Flappy Bird game instance. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultFlappyConfig(),
		store:  &memoryStore{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset initializes the game: loads the high score, seeds the random sources
// and restarts into Waiting.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.gapRng = rand.New(rand.NewSource(rc.Seed))
	g.cueRng = rand.New(rand.NewSource(rc.Seed + 1))
	g.pipes = NewPipeManager(g.gapRng, g.cfg.Screen.Width, g.cfg.Pipes)
	g.clock = 0
	g.tick = 0

	hs, err := g.store.LoadHighScore()
	if err != nil {
		g.logger.Warn("load high score failed, using 0", "err", err)
		hs = 0
	}
	g.highScore = core.Max(hs, 0)

	g.restart()
	g.logger.Info("high score loaded", "high_score", g.highScore, "seed", rc.Seed)
}

// restart puts the bird, pipes, base and score back to their initial values
// and enters Waiting.
func (g *Game) restart() {
	g.mode = ModeWaiting
	g.bird = Bird{
		X:      g.cfg.Bird.X,
		Y:      g.cfg.Bird.StartY,
		Width:  g.cfg.Bird.Width,
		Height: g.cfg.Bird.Height,
	}
	g.score = 0
	g.pipes.Reset()
	g.base = NewBase(g.cfg.Base.TileWidth, g.cfg.Base.Y)
	g.wings = wingCycle{}
	g.override.cancel()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]
	g.tick++

	dt := in.Elapsed
	if dt <= 0 {
		dt = g.nominalTick()
	}
	g.clock += dt
	g.override.advance(dt, g.cfg.Animation.FlapWindow())

	quit := false
	flapped := false
	restarted := false
	for _, e := range in.Events {
		switch {
		case e.Action == core.ActionQuit:
			quit = true
		case e.IsFlap() && !restarted:
			// A restart swallows the rest of the tick's flaps.
			restarted = g.mode == ModeGameOver
			if g.handleFlap(e) {
				flapped = true
			}
		}
	}

	if g.mode != ModeGameOver {
		g.base.Scroll(g.cfg.Base.Speed)
	}

	switch g.mode {
	case ModePlaying:
		g.bird.Advance(g.cfg.Physics.Gravity, flapped)
		removed := g.pipes.Update()
		for i := 0; i < removed; i++ {
			g.score++
			g.emit(core.Cue{Kind: core.CuePoint})
		}
		if Collides(g.bird, g.pipes.pipes, g.pipes.Geometry(), g.cfg.GroundY()) {
			g.enterGameOver()
		}
	case ModeWaiting:
		g.bird.Y = g.bobY()
		g.wings.advance(dt, g.cfg.Animation.WaitingFlapInterval())
	}

	cues := make([]core.Cue, len(g.cues))
	copy(cues, g.cues)
	return core.StepResult{State: g.State(), Cues: cues, Quit: quit}
}

// handleFlap dispatches one flap-equivalent event. It returns true when the
// event applied the flap impulse.
func (g *Game) handleFlap(e core.Event) bool {
	switch g.mode {
	case ModeWaiting:
		g.mode = ModePlaying
		g.logger.Debug("playing")
		return false
	case ModeGameOver:
		g.restart()
		g.logger.Debug("restart")
		return false
	}

	g.bird.Flap(g.cfg.Physics.FlapImpulse)
	variant := 0
	if e.Action == core.ActionFlapPointer {
		variant = g.cueRng.Intn(g.cfg.Audio.FlapVariants)
	}
	g.emit(core.Cue{Kind: core.CueFlap, Variant: variant})
	g.override.start()
	return true
}

// enterGameOver performs the Playing to GameOver transition. Everything here
// happens once per transition.
func (g *Game) enterGameOver() {
	g.mode = ModeGameOver
	g.override.cancel()
	g.emit(core.Cue{Kind: core.CueHit})
	g.emit(core.Cue{Kind: core.CueGameOver})

	if g.score > g.highScore {
		g.highScore = g.score
		if err := g.store.SaveHighScore(g.score); err != nil {
			g.logger.Warn("save high score failed", "score", g.score, "err", err)
		} else {
			g.logger.Info("new high score", "score", g.score)
		}
	}
	g.logger.Debug("game over", "score", g.score, "tick", g.tick)
}

func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

// bobY returns the cosmetic waiting height for the current clock.
func (g *Game) bobY() float64 {
	ms := float64(g.clock) / float64(time.Millisecond)
	return g.cfg.Bird.StartY + math.Sin(ms*g.cfg.Animation.BobSpeed)*g.cfg.Animation.BobAmplitude
}

func (g *Game) nominalTick() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = g.cfg.Screen.TickRate
	}
	return time.Second / time.Duration(rate)
}

// phase returns the wing phase the renderer should show.
func (g *Game) phase() Phase {
	switch g.mode {
	case ModeWaiting:
		return g.wings.phase
	case ModePlaying:
		if p, ok := g.override.phase(g.cfg.Animation.FlapWindow()); ok {
			return p
		}
	}
	return PhaseFor(g.bird.Velocity, g.cfg.Physics.PhaseThreshold)
}

// Mode returns the current state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Bird returns a copy of the bird.
func (g *Game) Bird() Bird {
	return g.bird
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Waiting:   g.mode == ModeWaiting,
		GameOver:  g.mode == ModeGameOver,
	}
}
