package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/promeet/roster-api/internal/models"
)

// PostgresSnapshotRepository keeps the blob in a single-row table keyed by
// the snapshot name.
type PostgresSnapshotRepository struct {
	db  *sqlx.DB
	key string
}

// NewPostgresSnapshotRepository constructs the repository.
func NewPostgresSnapshotRepository(db *sqlx.DB, key string) *PostgresSnapshotRepository {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &PostgresSnapshotRepository{db: db, key: key}
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func (r *PostgresSnapshotRepository) EnsureSchema(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS roster_snapshots (
	key        TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure snapshot schema: %w", err)
	}
	return nil
}

// Load reads the row; a missing row yields an empty collection.
func (r *PostgresSnapshotRepository) Load(ctx context.Context) ([]models.Meeting, error) {
	const query = `SELECT payload FROM roster_snapshots WHERE key = $1`
	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query, r.key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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

// Save upserts the row with the given collection.
func (r *PostgresSnapshotRepository) Save(ctx context.Context, meetings []models.Meeting) error {
	raw, err := json.Marshal(meetings)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	const query = `INSERT INTO roster_snapshots (key, payload, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (key)
DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, r.key, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
