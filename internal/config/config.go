// Package config provides YAML-based configuration loading for the flappy
// game: world geometry, physics tuning, animation timing, audio, storage,
// logging and display settings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Frontend names accepted by DisplayConfig.Frontend.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// Storage backends accepted by StorageConfig.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Bird      BirdConfig      `yaml:"bird"`
	Pipes     PipesConfig     `yaml:"pipes"`
	Base      BaseConfig      `yaml:"base"`
	Animation AnimationConfig `yaml:"animation"`
	Audio     AudioConfig     `yaml:"audio"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
	Display   DisplayConfig   `yaml:"display"`
}

// ScreenConfig defines the world size in world units and the tick rate.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// PhysicsConfig defines the bird's motion constants, per tick.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	FlapImpulse    float64 `yaml:"flap_impulse"`
	TiltFactor     float64 `yaml:"tilt_factor"`
	MaxTilt        float64 `yaml:"max_tilt"`
	PhaseThreshold float64 `yaml:"phase_threshold"`
}

// BirdConfig defines the bird's fixed column, start height and sprite size.
type BirdConfig struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// PipesConfig defines pipe geometry, scroll speed and spawn policy.
// Gap-center heights are drawn from [MinGapY, MaxGapY).
type PipesConfig struct {
	Width        int     `yaml:"width"`
	SpriteHeight int     `yaml:"sprite_height"`
	Gap          int     `yaml:"gap"`
	Speed        float64 `yaml:"speed"`
	SpawnSpacing int     `yaml:"spawn_spacing"`
	MinGapY      int     `yaml:"min_gap_y"`
	MaxGapY      int     `yaml:"max_gap_y"`
}

// BaseConfig defines the scrolling ground.
type BaseConfig struct {
	Y         float64 `yaml:"y"`
	TileWidth float64 `yaml:"tile_width"`
	Speed     float64 `yaml:"speed"`
}

// AnimationConfig defines the cosmetic, wall-clock driven animations.
type AnimationConfig struct {
	BobSpeed          float64 `yaml:"bob_speed"` // radians per millisecond
	BobAmplitude      float64 `yaml:"bob_amplitude"`
	WaitingFlapMillis int     `yaml:"waiting_flap_ms"`
	FlapWindowMillis  int     `yaml:"flap_window_ms"`
}

// WaitingFlapInterval returns the wing cycle interval used while waiting.
func (a AnimationConfig) WaitingFlapInterval() time.Duration {
	return time.Duration(a.WaitingFlapMillis) * time.Millisecond
}

// FlapWindow returns how long a flap forces the wing progression.
func (a AnimationConfig) FlapWindow() time.Duration {
	return time.Duration(a.FlapWindowMillis) * time.Millisecond
}

// AudioConfig defines cue playback.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	Volume       float64 `yaml:"volume"` // exponent applied with base 2; 0 is unity
	FlapVariants int     `yaml:"flap_variants"`
}

// StorageConfig selects where the high score lives.
type StorageConfig struct {
	Backend       string `yaml:"backend"`
	HighScoreFile string `yaml:"highscore_file"`
	DBPath        string `yaml:"db_path"`
}

// LoggingConfig routes the logger. An empty File discards output.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DisplayConfig selects and tunes the frontend.
type DisplayConfig struct {
	Frontend   string `yaml:"frontend"`
	Title      string `yaml:"title"`
	Scale      int    `yaml:"scale"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// GroundY returns the top of the base, which is the bird's lower bound.
func (c FlappyConfig) GroundY() float64 {
	return c.Base.Y
}

// Validate reports every value that would make the simulation meaningless.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen: size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.TickRate > 0, "screen: tick_rate must be positive, got %d", c.Screen.TickRate)
	check(c.Bird.Width > 0 && c.Bird.Height > 0, "bird: size must be positive, got %dx%d", c.Bird.Width, c.Bird.Height)
	check(c.Pipes.Width > 0, "pipes: width must be positive, got %d", c.Pipes.Width)
	check(c.Pipes.SpriteHeight > 0, "pipes: sprite_height must be positive, got %d", c.Pipes.SpriteHeight)
	check(c.Pipes.Gap > 0, "pipes: gap must be positive, got %d", c.Pipes.Gap)
	check(c.Pipes.MaxGapY > c.Pipes.MinGapY, "pipes: gap range [%d, %d) is empty", c.Pipes.MinGapY, c.Pipes.MaxGapY)
	check(c.Base.TileWidth > 0, "base: tile_width must be positive, got %v", c.Base.TileWidth)
	check(c.Base.Y > 0 && c.Base.Y <= float64(c.Screen.Height), "base: y must be within the screen, got %v", c.Base.Y)
	check(c.Animation.WaitingFlapMillis > 0, "animation: waiting_flap_ms must be positive, got %d", c.Animation.WaitingFlapMillis)
	check(c.Animation.FlapWindowMillis > 0, "animation: flap_window_ms must be positive, got %d", c.Animation.FlapWindowMillis)
	check(c.Audio.FlapVariants > 0, "audio: flap_variants must be positive, got %d", c.Audio.FlapVariants)
	check(c.Storage.Backend == BackendFile || c.Storage.Backend == BackendSQLite, "storage: unknown backend %q", c.Storage.Backend)
	check(c.Display.Frontend == FrontendTerminal || c.Display.Frontend == FrontendWindow, "display: unknown frontend %q", c.Display.Frontend)

	return errors.Join(errs...)
}
