package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/promeet/roster-api/internal/models"
)

// RedisSnapshotRepository stores the meeting collection under one Redis key.
type RedisSnapshotRepository struct {
	client *redis.Client
	key    string
}

// NewRedisSnapshotRepository constructs the repository.
func NewRedisSnapshotRepository(client *redis.Client, key string) *RedisSnapshotRepository {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &RedisSnapshotRepository{client: client, key: key}
}

// Load reads the blob; a missing key yields an empty collection.
func (r *RedisSnapshotRepository) Load(ctx context.Context) ([]models.Meeting, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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

// Save overwrites the blob with the given collection. No TTL: the roster
// outlives any session.
func (r *RedisSnapshotRepository) Save(ctx context.Context, meetings []models.Meeting) error {
	raw, err := json.Marshal(meetings)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
