package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// OutOfBounds reports whether the bird is above the screen or into the base.
// The valid range for Y is [0, groundY-height].
func OutOfBounds(b Bird, groundY float64) bool {
	return b.Y < 0 || b.Y+float64(b.Height) > groundY
}

// Collides is the collision verdict for one tick: the bird's box overlaps a
// pipe rectangle or the bird left the vertical bounds.
func Collides(b Bird, pipes []Pipe, g PipeGeometry, groundY float64) bool {
	if OutOfBounds(b, groundY) {
		return true
	}
	return collidesWithPipes(b.Rect(), pipes, g)
}

func collidesWithPipes(r core.Rect, pipes []Pipe, g PipeGeometry) bool {
	for _, p := range pipes {
		if r.Intersects(p.TopRect(g)) || r.Intersects(p.BottomRect(g)) {
			return true
		}
	}
	return false
}
