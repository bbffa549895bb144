package memory

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/point-processor/internal/domain/port/core"
)

// PointHistoryTable is the append-only transaction log. Sequence ids come
// from a table-wide cursor starting at 1, so insertion order and id order
// always agree.
type PointHistoryTable struct {
	mu           sync.RWMutex
	table        []entity.PointHistory
	cursor       int64
	timeProvider coreport.TimeProvider
	latency      time.Duration
}

// NewPointHistoryTable creates an empty history table
func NewPointHistoryTable(timeProvider coreport.TimeProvider) *PointHistoryTable {
	return &PointHistoryTable{
		cursor:       1,
		timeProvider: timeProvider,
	}
}

// WithLatency makes every insert sleep for d before appending, simulating a
// slower store
func (t *PointHistoryTable) WithLatency(d time.Duration) *PointHistoryTable {
	t.latency = d
	return t
}

// Insert appends one history record and returns it with its assigned id
func (t *PointHistoryTable) Insert(_ context.Context, userID uint64, point int64, txType entity.TransactionType, timeMillis int64) (*entity.PointHistory, error) {
	if t.latency > 0 {
		t.timeProvider.Sleep(t.latency)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	record := entity.PointHistory{
		ID:         t.cursor,
		UserID:     userID,
		Point:      point,
		Type:       txType,
		TimeMillis: timeMillis,
	}
	t.cursor++
	t.table = append(t.table, record)

	copied := record
	return &copied, nil
}

// SelectAllByUserID returns the user's records in insertion order
func (t *PointHistoryTable) SelectAllByUserID(_ context.Context, userID uint64) ([]entity.PointHistory, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]entity.PointHistory, 0)
	for _, record := range t.table {
		if record.UserID == userID {
			result = append(result, record)
		}
	}
	return result, nil
}
