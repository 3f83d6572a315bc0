// Package cache persists the last successful search to disk so a restart can
// restore it without touching the upstream APIs.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/openroam/wander/internal/models"
)

// Snapshot is the last successful search: the resolved center, the mood and
// radius it ran with, and the ingested places with distances and relevance
// scores already computed.
type Snapshot struct {
	Center       models.SearchCenter `json:"center"`
	Mood         string              `json:"mood"`
	RadiusMeters float64             `json:"radius_meters"`
	Places       []models.Place      `json:"places"`
	SavedAt      time.Time           `json:"saved_at"`
}

// FileCache stores the snapshot as a single JSON document.
type FileCache struct {
	path string
}

// NewFileCache creates a cache backed by the given file path. Parent
// directories are created on first save.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Save replaces the stored snapshot. The write goes through a temp file and a
// rename so readers never observe a half-written document.
func (fc *FileCache) Save(snapshot *Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(fc.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp := fc.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err = os.Rename(tmp, fc.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}

// Load reads the stored snapshot. A missing file returns (nil, nil): having
// no previous search is a normal state, not an error.
func (fc *FileCache) Load() (*Snapshot, error) {
	data, err := os.ReadFile(fc.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return &snapshot, nil
}
