package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// FileStore keeps the high score as decimal text in a single file.
type FileStore struct {
	path string
}

// OpenFile returns a store backed by the file at path. The file itself is
// created on the first load or save.
func OpenFile(path string) *FileStore {
	return &FileStore{path: config.ExpandHome(path)}
}

// Path returns the file location.
func (f *FileStore) Path() string {
	return f.path
}

// LoadHighScore reads the stored value. A missing, unreadable or corrupt
// file yields 0 and is rewritten to "0"; only a failed rewrite is reported.
func (f *FileStore) LoadHighScore() (int, error) {
	data, err := os.ReadFile(f.path)
	if err == nil {
		if score, perr := strconv.Atoi(strings.TrimSpace(string(data))); perr == nil && score >= 0 {
			return score, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrPermission) {
		// Anything else, like a directory in the way, cannot be fixed by
		// rewriting either.
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	if err := f.SaveHighScore(0); err != nil {
		return 0, err
	}
	return 0, nil
}

// SaveHighScore writes score as plain decimal text.
func (f *FileStore) SaveHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op; the file is not held open.
func (f *FileStore) Close() error {
	return nil
}
