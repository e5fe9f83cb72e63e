package breakout

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSavePath returns ~/.arcade/saves/breakout.msgpack.
func DefaultSavePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("breakout: cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".arcade", "saves", "breakout.msgpack"), nil
}

// SaveSnapshot writes the world's snapshot to path, creating parent
// directories. The file is replaced atomically.
func SaveSnapshot(path string, w *GameWorld) error {
	snap := w.Snapshot()
	data, err := snap.Encode()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("breakout: cannot create save directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("breakout: cannot write save: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("breakout: cannot replace save: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("breakout: cannot read save: %w", err)
	}
	return DecodeSnapshot(data)
}
