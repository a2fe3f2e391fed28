package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is one obstacle pair. GapY is the gap-center height: the bottom pipe
// starts there and the top pipe ends Gap units above it.
type Pipe struct {
	X    float64
	GapY int
}

// PipeGeometry holds the shape shared by every pipe.
type PipeGeometry struct {
	Width        int
	SpriteHeight int
	Gap          int
}

// TopRect returns the collision rectangle of the upper, mirrored pipe. It
// spans from the sprite's top edge down to the gap top.
func (p Pipe) TopRect(g PipeGeometry) core.Rect {
	return core.NewRect(core.FloorInt(p.X), p.GapY-g.Gap-g.SpriteHeight, g.Width, g.SpriteHeight)
}

// BottomRect returns the collision rectangle of the lower pipe. It spans from
// the gap bottom down to the sprite's bottom edge.
func (p Pipe) BottomRect(g PipeGeometry) core.Rect {
	return core.NewRect(core.FloorInt(p.X), p.GapY, g.Width, g.SpriteHeight)
}

// PipeManager handles spawning, scrolling and culling of pipes. Pipes are
// kept oldest (leftmost) first.
type PipeManager struct {
	pipes   []Pipe
	rng     *rand.Rand
	screenW int
	cfg     config.PipesConfig
}

// NewPipeManager creates a pipe manager drawing gap heights from rng.
func NewPipeManager(rng *rand.Rand, screenW int, cfg config.PipesConfig) *PipeManager {
	return &PipeManager{
		pipes:   make([]Pipe, 0, 4),
		rng:     rng,
		screenW: screenW,
		cfg:     cfg,
	}
}

// Geometry returns the shape of every pipe.
func (pm *PipeManager) Geometry() PipeGeometry {
	return PipeGeometry{
		Width:        pm.cfg.Width,
		SpriteHeight: pm.cfg.SpriteHeight,
		Gap:          pm.cfg.Gap,
	}
}

// Reset clears the sequence and spawns exactly one fresh pipe.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.spawn()
}

// Update scrolls every pipe, removes the ones that left the screen and spawns
// a new pipe when there is room. It returns how many pipes were removed.
func (pm *PipeManager) Update() int {
	pm.Scroll()
	removed := pm.Cull()
	pm.SpawnIfNeeded()
	return removed
}

// Scroll moves every pipe left by the configured speed.
func (pm *PipeManager) Scroll() {
	for i := range pm.pipes {
		pm.pipes[i].X -= pm.cfg.Speed
	}
}

// Cull removes pipes whose right edge passed the left screen edge, keeping
// the relative order of the rest. Each pipe is visited exactly once.
func (pm *PipeManager) Cull() int {
	kept := pm.pipes[:0]
	removed := 0
	for _, p := range pm.pipes {
		if p.X+float64(pm.cfg.Width) < 0 {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
	return removed
}

// SpawnIfNeeded appends a pipe at the right edge when the sequence is empty
// or the newest pipe has scrolled past the spawn threshold.
func (pm *PipeManager) SpawnIfNeeded() bool {
	if len(pm.pipes) > 0 {
		last := pm.pipes[len(pm.pipes)-1]
		if last.X >= float64(pm.screenW-pm.cfg.SpawnSpacing) {
			return false
		}
	}
	pm.spawn()
	return true
}

// spawn appends a pipe at the right edge with a random gap-center height in
// [MinGapY, MaxGapY).
func (pm *PipeManager) spawn() {
	gapY := pm.cfg.MinGapY + pm.rng.Intn(pm.cfg.MaxGapY-pm.cfg.MinGapY)
	pm.pipes = append(pm.pipes, Pipe{X: float64(pm.screenW), GapY: gapY})
}

// Pipes returns a copy of the current sequence.
func (pm *PipeManager) Pipes() []Pipe {
	out := make([]Pipe, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}

// Len returns the number of live pipes.
func (pm *PipeManager) Len() int {
	return len(pm.pipes)
}
