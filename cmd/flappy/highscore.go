package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Print the stored high score",
	Args:  cobra.NoArgs,
	RunE:  runHighscore,
}

var highscoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the stored high score to 0",
	Args:  cobra.NoArgs,
	RunE:  runHighscoreReset,
}

func init() {
	highscoreCmd.AddCommand(highscoreResetCmd)
}

func runHighscore(cmd *cobra.Command, args []string) error {
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

	score, err := store.LoadHighScore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, score)

	// Only the database remembers when the score was set.
	if db, ok := store.(*storage.Store); ok {
		if at, err := db.UpdatedAt(); err == nil && !at.IsZero() {
			fmt.Fprintf(out, "Updated: %s\n", at.Local().Format("2006-01-02 15:04"))
		}
	}
	return nil
}

func runHighscoreReset(cmd *cobra.Command, args []string) error {
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

	if err := store.SaveHighScore(0); err != nil {
		return err
	}
	a.logger.Info("high score reset")
	fmt.Fprintln(cmd.OutOrStdout(), "High score reset to 0.")
	return nil
}
