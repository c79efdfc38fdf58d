package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris(\"\") returned error: %v", err)
	}

	want := DefaultTetrisConfig()
	if cfg.Board != want.Board {
		t.Errorf("Board = %+v, want %+v", cfg.Board, want.Board)
	}
	if cfg.Timing != want.Timing {
		t.Errorf("Timing = %+v, want %+v", cfg.Timing, want.Timing)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("Scoring = %+v, want %+v", cfg.Scoring, want.Scoring)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("board:\n  width: 12\n  height: 22\ntiming:\n  base_drop_ms: 800\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris(%q) returned error: %v", path, err)
	}

	if cfg.Board.Width != 12 || cfg.Board.Height != 22 {
		t.Errorf("Board = %+v, want 12x22", cfg.Board)
	}
	if cfg.Timing.BaseDropMs != 800 {
		t.Errorf("BaseDropMs = %d, want 800", cfg.Timing.BaseDropMs)
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadTetris with a missing custom path should return an error")
	}
}

func TestLoadTetrisMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTetris(path); err == nil {
		t.Error("LoadTetris with malformed YAML should return an error")
	}
}
