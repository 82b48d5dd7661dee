// Package save persists a single saved game as a JSON snapshot file.
// A missing or unreadable file means "no saved game"; loading never
// fails the program.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-spider/internal/engine"
)

// Write stores the snapshot at path, creating parent directories as
// needed. The write is atomic: a temp file is renamed into place, so a
// crash can't leave a half-written save behind.
func Write(path string, snap engine.Snapshot) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save: cannot create directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("save: cannot encode snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("save: cannot write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save: cannot replace snapshot: %w", err)
	}
	return nil
}

// Load reads a saved snapshot. A missing, unreadable, or corrupt file
// yields (nil, nil): there is simply no saved game.
func Load(path string) (*engine.Snapshot, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	var snap engine.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil
	}
	if snap.Version != engine.SnapshotVersion {
		return nil, nil
	}
	return &snap, nil
}

// Delete removes the saved game. Absence is not an error.
func Delete(path string) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("save: cannot delete snapshot: %w", err)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("save: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
