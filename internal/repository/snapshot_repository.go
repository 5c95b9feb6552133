// Package repository persists the whole meeting collection as one JSON blob
// behind a fixed key. The blob is read once at startup and rewritten
// wholesale after every mutation; there are no partial writes and no schema
// version field.
package repository

import (
	"context"

	"github.com/promeet/roster-api/internal/models"
)

// DefaultSnapshotKey matches the key the browser build of the product used.
const DefaultSnapshotKey = "promeet_data"

// SnapshotRepository loads and stores the full meeting collection.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]models.Meeting, error)
	Save(ctx context.Context, meetings []models.Meeting) error
}
