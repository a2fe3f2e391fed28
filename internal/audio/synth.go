package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Tone is one note of a cue.
type Tone struct {
	Freq float64
	Dur  time.Duration
	Gain float64 // linear, 1 is unity
}

// flapBase is the starting pitch of each flap variant.
var flapBase = []float64{520, 600, 680, 760}

// Recipe returns the notes a cue is played as. The flap variant wraps around
// the available chirps.
func Recipe(c core.Cue, variants int) []Tone {
	switch c.Kind {
	case core.CueFlap:
		n := core.Min(core.Max(variants, 1), len(flapBase))
		v := c.Variant % n
		if v < 0 {
			v += n
		}
		f := flapBase[v]
		return []Tone{
			{Freq: f, Dur: 40 * time.Millisecond, Gain: 0.5},
			{Freq: f * 1.5, Dur: 40 * time.Millisecond, Gain: 0.4},
		}
	case core.CueHit:
		return []Tone{
			{Freq: 180, Dur: 80 * time.Millisecond, Gain: 0.8},
			{Freq: 120, Dur: 60 * time.Millisecond, Gain: 0.8},
		}
	case core.CueGameOver:
		return []Tone{
			{Freq: 440, Dur: 120 * time.Millisecond, Gain: 0.6},
			{Freq: 330, Dur: 120 * time.Millisecond, Gain: 0.6},
			{Freq: 220, Dur: 120 * time.Millisecond, Gain: 0.6},
		}
	case core.CuePoint:
		return []Tone{
			{Freq: 880, Dur: 60 * time.Millisecond, Gain: 0.5},
			{Freq: 1320, Dur: 90 * time.Millisecond, Gain: 0.5},
		}
	default:
		return nil
	}
}

// Stream renders a recipe as a finite streamer. A tone the sample rate
// cannot represent is played as silence of the same length.
func Stream(sr beep.SampleRate, tones []Tone) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		n := sr.N(t.Dur)
		sine, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			parts = append(parts, beep.Silence(n))
			continue
		}
		parts = append(parts, gain(beep.Take(n, sine), t.Gain))
	}
	return beep.Seq(parts...)
}

// gain scales a streamer by a linear factor.
// math.Log2(0) is -Inf, so zero gain is made silent instead.
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}
