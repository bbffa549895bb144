package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
	timeadapter "github.com/amirhossein-jamali/point-processor/internal/infrastructure/adapter/time"
)

func TestUserPointTable_SelectByID(t *testing.T) {
	ctx := context.Background()
	table := NewUserPointTable(timeadapter.NewRealTimeProvider())

	t.Run("should return a zero record for an unknown user", func(t *testing.T) {
		record, err := table.SelectByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), record.ID)
		assert.Equal(t, int64(0), record.Point)
		assert.Positive(t, record.UpdateMillis)
	})

	t.Run("should return a copy of the stored record", func(t *testing.T) {
		_, err := table.InsertOrUpdate(ctx, 1, 500)
		require.NoError(t, err)

		first, err := table.SelectByID(ctx, 1)
		require.NoError(t, err)
		first.Point = -1

		second, err := table.SelectByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(500), second.Point, "mutating a returned record must not touch the table")
	})
}

func TestUserPointTable_InsertOrUpdate(t *testing.T) {
	ctx := context.Background()
	table := NewUserPointTable(timeadapter.NewRealTimeProvider())

	t.Run("should insert then overwrite", func(t *testing.T) {
		inserted, err := table.InsertOrUpdate(ctx, 1, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(100), inserted.Point)

		updated, err := table.InsertOrUpdate(ctx, 1, 250)
		require.NoError(t, err)
		assert.Equal(t, int64(250), updated.Point)

		record, err := table.SelectByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(250), record.Point)
	})

	t.Run("should stamp each write with a fresh timestamp", func(t *testing.T) {
		first, err := table.InsertOrUpdate(ctx, 2, 10)
		require.NoError(t, err)

		time.Sleep(2 * time.Millisecond)

		second, err := table.InsertOrUpdate(ctx, 2, 20)
		require.NoError(t, err)
		assert.Greater(t, second.UpdateMillis, first.UpdateMillis)
	})
}

func TestPointHistoryTable(t *testing.T) {
	ctx := context.Background()
	table := NewPointHistoryTable(timeadapter.NewRealTimeProvider())

	t.Run("should return an empty slice for a user with no records", func(t *testing.T) {
		records, err := table.SelectAllByUserID(ctx, 99)

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("should assign increasing sequence ids starting at one", func(t *testing.T) {
		first, err := table.Insert(ctx, 1, 500, entity.TypeCharge, 1000)
		require.NoError(t, err)
		assert.Equal(t, int64(1), first.ID)

		second, err := table.Insert(ctx, 2, 300, entity.TypeCharge, 1100)
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("should return only the requested user's records in insertion order", func(t *testing.T) {
		_, err := table.Insert(ctx, 1, 200, entity.TypeUse, 1200)
		require.NoError(t, err)

		records, err := table.SelectAllByUserID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, int64(500), records[0].Point)
		assert.Equal(t, entity.TypeCharge, records[0].Type)
		assert.Equal(t, int64(200), records[1].Point)
		assert.Equal(t, entity.TypeUse, records[1].Type)
		assert.Less(t, records[0].ID, records[1].ID)
	})
}

func TestTableLatency(t *testing.T) {
	ctx := context.Background()
	latency := 20 * time.Millisecond
	table := NewUserPointTable(timeadapter.NewRealTimeProvider()).WithLatency(latency)

	start := time.Now()
	_, err := table.InsertOrUpdate(ctx, 1, 100)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), latency)
}
