// flappy is a Flappy Bird clone for the terminal or a desktop window.
//
// Usage:
//
//	flappy                    - Play
//	flappy highscore          - Print the stored high score
//	flappy highscore reset    - Reset the stored high score to 0
//
// Settings come from a YAML file: $FLAPPY_CONFIG, ~/.flappy/configs/flappy.yaml
// or ./configs/flappy.yaml, falling back to the built-in defaults.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between the pipes.

Controls:
  Space/Up/W/Click  - Flap (start, and restart after game over)
  Q/Esc/Ctrl+C      - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.AddCommand(highscoreCmd)
}

// app bundles what every command needs.
type app struct {
	cfg     config.FlappyConfig
	logger  *log.Logger
	closeFn func() error
}

func setup() (*app, error) {
	cfg, source, err := config.LoadFlappy(os.Getenv(config.EnvConfigPath))
	if err != nil {
		return nil, err
	}

	logger, closeFn, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "source", source)

	return &app{cfg: cfg, logger: logger, closeFn: closeFn}, nil
}

func (a *app) Close() {
	//nolint:errcheck // Best-effort close on exit
	a.closeFn()
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	store, err := storage.OpenBackend(a.cfg.Storage, a.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	sink := audio.Open(a.cfg.Audio, a.logger)
	defer sink.Close()

	game := flappy.New(
		flappy.WithConfig(a.cfg),
		flappy.WithHighScoreStore(store),
		flappy.WithLogger(a.logger),
	)

	rc := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: a.cfg.Screen.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	a.logger.Info("starting", "frontend", a.cfg.Display.Frontend, "seed", rc.Seed)

	switch a.cfg.Display.Frontend {
	case config.FrontendWindow:
		err = window.Run(game, sink, a.cfg, rc, a.logger)
	default:
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rc.ScreenW = w
			rc.ScreenH = h
		}
		err = tui.Run(game, sink, rc, a.logger)
	}
	if err != nil {
		a.logger.Error("game loop failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}

	a.logger.Info("bye", "high_score", game.State().HighScore)
	return nil
}
