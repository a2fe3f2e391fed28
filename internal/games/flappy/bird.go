package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the bird's wing position, used to pick a sprite.
type Phase int

const (
	PhaseUp Phase = iota
	PhaseMid
	PhaseDown
	phaseCount
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUp:
		return "up"
	case PhaseMid:
		return "mid"
	case PhaseDown:
		return "down"
	default:
		return "unknown"
	}
}

// Bird is the player. X never changes; Y is left unclamped so leaving the
// playfield shows up as a collision instead.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64
	Width    int
	Height   int
}

// Flap sets the velocity to the upward impulse, discarding whatever it was.
func (b *Bird) Flap(impulse float64) {
	b.Velocity = impulse
}

// Advance moves the bird by one tick. A tick that flapped keeps the impulse
// as its velocity; any other tick adds gravity first.
func (b *Bird) Advance(gravity float64, flapped bool) {
	if !flapped {
		b.Velocity += gravity
	}
	b.Y += b.Velocity
}

// Rect returns the bird's collision box.
func (b Bird) Rect() core.Rect {
	return core.NewRect(core.FloorInt(b.X), core.FloorInt(b.Y), b.Width, b.Height)
}

// Tilt returns the cosmetic rotation in degrees for a velocity. Positive
// tilts the nose up.
func Tilt(velocity, factor, limit float64) float64 {
	return core.ClampF(-velocity*factor, -limit, limit)
}

// PhaseFor picks the wing phase from the velocity alone: rising fast shows
// the wing up, falling shows it down.
func PhaseFor(velocity, threshold float64) Phase {
	switch {
	case velocity < -threshold:
		return PhaseUp
	case velocity < threshold:
		return PhaseMid
	default:
		return PhaseDown
	}
}
