package core

import "fmt"

// CueKind identifies a fire-and-forget audio request.
type CueKind int

const (
	CueFlap CueKind = iota
	CueHit
	CueGameOver
	CuePoint
)

// String returns the cue's name.
func (k CueKind) String() string {
	switch k {
	case CueFlap:
		return "flap"
	case CueHit:
		return "hit"
	case CueGameOver:
		return "gameover"
	case CuePoint:
		return "point"
	default:
		return "unknown"
	}
}

// Cue is an audio request emitted by the game. Variant selects among the
// flap sounds and is zero for every other kind.
type Cue struct {
	Kind    CueKind
	Variant int
}

func (c Cue) String() string {
	if c.Kind == CueFlap {
		return fmt.Sprintf("flap(%d)", c.Variant)
	}
	return c.Kind.String()
}
