package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Speaker plays cues on the default output device. Cues overlap freely;
// each is added to a shared mixer and dropped when it ends.
type Speaker struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	variants    int
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// Open returns a device for cfg. Audio is optional: when it is disabled or
// the device cannot be opened the result plays nothing.
func Open(cfg config.AudioConfig, logger *log.Logger) Device {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Nop{}
	}
	sp := NewSpeaker(cfg, logger)
	if err := sp.Initialize(cfg.Volume); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Nop{}
	}
	return sp
}

// NewSpeaker creates a speaker. Call Initialize before playing.
func NewSpeaker(cfg config.AudioConfig, logger *log.Logger) *Speaker {
	return &Speaker{
		sampleRate: beep.SampleRate(cfg.SampleRate),
		variants:   cfg.FlapVariants,
		mixer:      &beep.Mixer{},
		logger:     logger,
	}
}

// Initialize opens the output device and starts the mixer. volume is an
// exponent with base 2; 0 is unity.
func (s *Speaker) Initialize(volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(&effects.Volume{Streamer: s.mixer, Base: 2, Volume: volume})
	s.initialized = true
	s.logger.Debug("audio ready", "sample_rate", int(s.sampleRate))
	return nil
}

// Play queues a cue.
func (s *Speaker) Play(c core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	tones := Recipe(c, s.variants)
	if len(tones) == 0 {
		return
	}

	speaker.Lock()
	s.mixer.Add(Stream(s.sampleRate, tones))
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	s.initialized = false
	return nil
}
