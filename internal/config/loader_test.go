package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Default()
	if cfg.Scoring != want.Scoring {
		t.Errorf("embedded scoring %+v differs from hardcoded default %+v", cfg.Scoring, want.Scoring)
	}
	if cfg.Game != want.Game {
		t.Errorf("embedded game defaults %+v differ from %+v", cfg.Game, want.Game)
	}
}

func TestLoadCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
scoring:
  starting_score: 1000
  move_penalty: 2
  completion_bonus: 250
game:
  suits: 4
  include_aces: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.StartingScore != 1000 || cfg.Scoring.CompletionBonus != 250 {
		t.Errorf("custom scoring not applied: %+v", cfg.Scoring)
	}
	if cfg.Game.Suits != 4 || cfg.Game.IncludeAces {
		t.Errorf("custom game defaults not applied: %+v", cfg.Game)
	}
}

func TestLoadMissingCustomFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing config path should fail")
	}
}
