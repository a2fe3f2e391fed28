package storage

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Backend is a high-score store that may hold resources.
type Backend interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
	Close() error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*FileStore)(nil)
)

// OpenBackend opens the store selected by cfg.Backend.
func OpenBackend(cfg config.StorageConfig, logger *log.Logger) (Backend, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		fs := OpenFile(cfg.HighScoreFile)
		logger.Debug("high score storage", "backend", config.BackendFile, "path", fs.Path())
		return fs, nil
	case config.BackendSQLite:
		st, err := Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("high score storage", "backend", config.BackendSQLite, "path", cfg.DBPath)
		return st, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
