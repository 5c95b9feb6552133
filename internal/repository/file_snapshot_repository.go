package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/promeet/roster-api/internal/models"
)

// FileSnapshotRepository keeps the blob in a single JSON file on disk,
// written atomically via a rename.
type FileSnapshotRepository struct {
	path string
}

// NewFileSnapshotRepository ensures the parent directory exists.
func NewFileSnapshotRepository(path string) (*FileSnapshotRepository, error) {
	if path == "" {
		path = "./data/" + DefaultSnapshotKey + ".json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &FileSnapshotRepository{path: path}, nil
}

// Load reads the file; a missing file yields an empty collection.
func (r *FileSnapshotRepository) Load(ctx context.Context) ([]models.Meeting, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Meeting{}, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var meetings []models.Meeting
	if err := json.Unmarshal(raw, &meetings); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return meetings, nil
}

// Save rewrites the file with the given collection.
func (r *FileSnapshotRepository) Save(ctx context.Context, meetings []models.Meeting) error {
	raw, err := json.Marshal(meetings)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
