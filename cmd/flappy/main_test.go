package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func writeTestConfig(t *testing.T, dir, yaml string) {
	t.Helper()
	path := filepath.Join(dir, "flappy.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvConfigPath, path)
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
	return out.String()
}

func TestHighscoreCommands(t *testing.T) {
	dir := t.TempDir()
	hs := filepath.Join(dir, "hs.txt")
	writeTestConfig(t, dir, "storage:\n  backend: file\n  highscore_file: "+hs+"\nlogging:\n  file: \"\"\n")

	if err := os.WriteFile(hs, []byte("42"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := execute(t, "highscore"); strings.TrimSpace(got) != "42" {
		t.Errorf("highscore printed %q, want 42", got)
	}

	execute(t, "highscore", "reset")
	data, err := os.ReadFile(hs)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0" {
		t.Errorf("file after reset = %q, want 0", data)
	}
}

func TestHighscoreSQLite(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "hs.db")
	writeTestConfig(t, dir, "storage:\n  backend: sqlite\n  db_path: "+db+"\nlogging:\n  file: \"\"\n")

	got := execute(t, "highscore")
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if lines[0] != "0" {
		t.Errorf("highscore printed %q, want 0 first", got)
	}
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "Updated: ") {
		t.Errorf("missing update time in %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flappy.log")
	logger, closeFn, err := newLogger(config.LoggingConfig{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "k", 1)
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want the debug line", data)
	}

	if _, _, err := newLogger(config.LoggingConfig{Level: "loud"}); err == nil {
		t.Error("newLogger() accepted an unknown level")
	}
}
