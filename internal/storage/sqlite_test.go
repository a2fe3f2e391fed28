package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreLoadInitializesZero(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	at, err := store.UpdatedAt()
	if err != nil {
		t.Fatalf("UpdatedAt() failed: %v", err)
	}
	if !at.IsZero() {
		t.Errorf("UpdatedAt() = %v before any write, want zero", at)
	}

	score, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("LoadHighScore() = %d, want 0", score)
	}

	at, err = store.UpdatedAt()
	if err != nil {
		t.Fatalf("UpdatedAt() failed: %v", err)
	}
	if at.IsZero() {
		t.Error("UpdatedAt() is zero after the row was created")
	}
}

func TestStoreSaveAndReload(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	for _, s := range []int{10, 42, 7} {
		if err := store.SaveHighScore(s); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s, err)
		}
	}
	if got, err := store.LoadHighScore(); err != nil || got != 7 {
		t.Errorf("LoadHighScore() = %d, %v; want 7", got, err)
	}
	store.Close()

	// Reopen and verify persistence
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if got, err := store.LoadHighScore(); err != nil || got != 7 {
		t.Errorf("LoadHighScore() after reopen = %d, %v; want 7", got, err)
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM high_scores").Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want 1", rows)
	}
}

func TestStoreRejectsNegative(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveHighScore(-1); err == nil {
		t.Error("SaveHighScore(-1) succeeded, want error")
	}
}
