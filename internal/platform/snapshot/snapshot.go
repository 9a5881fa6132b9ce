// Package snapshot moves a registry snapshot across invocations. The on-disk
// representation is a transport detail; the logical contract lives on
// org.Snapshot.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"orgsynth/internal/domain/org"
)

// ErrMissingSnapshot means the second phase was invoked before the first
// phase persisted its registry. Fatal and user-actionable.
var ErrMissingSnapshot = errors.New("registry snapshot not found")

// Save writes the snapshot to path. The write completes before Save returns,
// so a later phase never observes a partial snapshot.
func Save(path string, snap org.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func Load(path string) (org.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return org.Snapshot{}, fmt.Errorf("%w at %s: run the employees phase first", ErrMissingSnapshot, path)
		}
		return org.Snapshot{}, err
	}
	var snap org.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return org.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snap, nil
}
