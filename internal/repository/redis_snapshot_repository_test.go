package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promeet/roster-api/internal/models"
)

func snapshotFixture() []models.Meeting {
	return []models.Meeting{
		{
			ID:        "m-1",
			Title:     "季度复盘会",
			Date:      "2024/6/1",
			CreatedAt: 1717200000000,
			Attendees: []models.Attendee{
				{ID: "a-1", Department: "销售部", Name: "李雷", Status: models.StatusPresent},
			},
		},
	}
}

func TestRedisSnapshotRepository_LoadMissingKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisSnapshotRepository(client, "")

	mock.ExpectGet(DefaultSnapshotKey).RedisNil()

	meetings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, meetings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSnapshotRepository_LoadRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisSnapshotRepository(client, "promeet_data")

	want := snapshotFixture()
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet("promeet_data").SetVal(string(raw))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSnapshotRepository_LoadCorruptPayload(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisSnapshotRepository(client, "promeet_data")

	mock.ExpectGet("promeet_data").SetVal("not-json")

	_, err := repo.Load(context.Background())
	assert.Error(t, err)
}

func TestRedisSnapshotRepository_Save(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewRedisSnapshotRepository(client, "promeet_data")

	meetings := snapshotFixture()
	raw, err := json.Marshal(meetings)
	require.NoError(t, err)

	mock.ExpectSet("promeet_data", raw, 0).SetVal("OK")

	require.NoError(t, repo.Save(context.Background(), meetings))
	assert.NoError(t, mock.ExpectationsWereMet())
}
