package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded document cannot be read.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:    288,
			Height:   512,
			TickRate: 60,
		},
		Physics: PhysicsConfig{
			Gravity:        0.5,
			FlapImpulse:    -10,
			TiltFactor:     3,
			MaxTilt:        30,
			PhaseThreshold: 1,
		},
		Bird: BirdConfig{
			X:      50,
			StartY: 256,
			Width:  34,
			Height: 24,
		},
		Pipes: PipesConfig{
			Width:        50,
			SpriteHeight: 320,
			Gap:          150,
			Speed:        3,
			SpawnSpacing: 200,
			MinGapY:      200,
			MaxGapY:      400,
		},
		Base: BaseConfig{
			Y:         462,
			TileWidth: 336,
			Speed:     3,
		},
		Animation: AnimationConfig{
			BobSpeed:          0.01,
			BobAmplitude:      5,
			WaitingFlapMillis: 200,
			FlapWindowMillis:  100,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			Volume:       -1,
			FlapVariants: 4,
		},
		Storage: StorageConfig{
			Backend:       BackendFile,
			HighScoreFile: "highscore.txt",
			DBPath:        "~/.flappy/flappy.db",
		},
		Logging: LoggingConfig{
			File:  "~/.flappy/flappy.log",
			Level: "info",
		},
		Display: DisplayConfig{
			Frontend:   FrontendTerminal,
			Title:      "FlapPy Clone",
			Scale:      1,
			Fullscreen: false,
		},
	}
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
