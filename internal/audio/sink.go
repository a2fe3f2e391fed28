// Package audio plays the game's cues. Sounds are synthesized with beep, so
// no asset files are needed.
package audio

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sink accepts fire-and-forget cues. Play must not block the game loop.
type Sink interface {
	Play(c core.Cue)
}

// Device is a Sink that owns an output device.
type Device interface {
	Sink
	Close() error
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(core.Cue) {}

func (Nop) Close() error { return nil }

var (
	_ Device = Nop{}
	_ Device = (*Speaker)(nil)
)
