package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/bmi/internal/model"
)

// Write-only history export. The file is a human-readable copy for the
// user; nothing in the app reads it back, so every session starts empty.

// Export writes snap to path as indented JSON, creating parent dirs.
// A relative path is resolved against the working directory.
func Export(path string, snap model.Snapshot) (string, error) {
	p, err := resolve(path)
	if err != nil {
		return "", err
	}
	if snap.Entries == nil {
		snap.Entries = []model.HistoryEntry{}
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p, nil
}

func resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, path), nil
}
