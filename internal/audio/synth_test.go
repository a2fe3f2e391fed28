package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRecipeShapes(t *testing.T) {
	tests := []struct {
		cue   core.Cue
		notes int
		first float64
	}{
		{core.Cue{Kind: core.CueFlap, Variant: 0}, 2, 520},
		{core.Cue{Kind: core.CueFlap, Variant: 3}, 2, 760},
		{core.Cue{Kind: core.CueFlap, Variant: 5}, 2, 600},
		{core.Cue{Kind: core.CueHit}, 2, 180},
		{core.Cue{Kind: core.CueGameOver}, 3, 440},
		{core.Cue{Kind: core.CuePoint}, 2, 880},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			tones := Recipe(tt.cue, 4)
			if len(tones) != tt.notes {
				t.Fatalf("notes = %d, want %d", len(tones), tt.notes)
			}
			if tones[0].Freq != tt.first {
				t.Errorf("first freq = %v, want %v", tones[0].Freq, tt.first)
			}
			for i, tone := range tones {
				if tone.Dur <= 0 || tone.Gain <= 0 {
					t.Errorf("tone %d = %+v", i, tone)
				}
			}
		})
	}
}

func TestRecipeUnknownCue(t *testing.T) {
	if tones := Recipe(core.Cue{Kind: core.CueKind(99)}, 4); tones != nil {
		t.Errorf("Recipe(unknown) = %v, want nil", tones)
	}
}

func TestRecipeSingleVariant(t *testing.T) {
	for v := 0; v < 4; v++ {
		tones := Recipe(core.Cue{Kind: core.CueFlap, Variant: v}, 1)
		if tones[0].Freq != 520 {
			t.Errorf("variant %d with one chirp: freq = %v, want 520", v, tones[0].Freq)
		}
	}
}

func countSamples(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestStreamLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	tones := []Tone{
		{Freq: 440, Dur: 120 * time.Millisecond, Gain: 0.6},
		{Freq: 330, Dur: 50 * time.Millisecond, Gain: 0},
		// Above Nyquist; rendered as silence.
		{Freq: 30000, Dur: 10 * time.Millisecond, Gain: 1},
	}

	want := sr.N(120*time.Millisecond) + sr.N(50*time.Millisecond) + sr.N(10*time.Millisecond)
	if got := countSamples(Stream(sr, tones)); got != want {
		t.Errorf("samples = %d, want %d", got, want)
	}
}

func TestOpenDisabled(t *testing.T) {
	dev := Open(config.AudioConfig{Enabled: false}, log.New(io.Discard))
	if _, ok := dev.(Nop); !ok {
		t.Fatalf("Open(disabled) = %T, want Nop", dev)
	}
	dev.Play(core.Cue{Kind: core.CueHit})
	if err := dev.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestSpeakerIgnoresCuesBeforeInit(t *testing.T) {
	sp := NewSpeaker(config.DefaultFlappyConfig().Audio, log.New(io.Discard))
	sp.Play(core.Cue{Kind: core.CuePoint})
	if sp.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before init", sp.mixer.Len())
	}
	if err := sp.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
