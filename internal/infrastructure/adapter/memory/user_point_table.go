// Package memory provides the in-memory balance and history tables used as
// the default storage driver. Both tables take an optional artificial latency
// so contention behavior can be exercised deterministically in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/point-processor/internal/domain/port/core"
)

// UserPointTable holds the current point balance per user. Each operation is
// atomic under the table mutex; the table itself provides no cross-call
// serialization, that is the keyed lock's job.
type UserPointTable struct {
	mu           sync.RWMutex
	table        map[uint64]entity.UserPoint
	timeProvider coreport.TimeProvider
	latency      time.Duration
}

// NewUserPointTable creates an empty balance table
func NewUserPointTable(timeProvider coreport.TimeProvider) *UserPointTable {
	return &UserPointTable{
		table:        make(map[uint64]entity.UserPoint),
		timeProvider: timeProvider,
	}
}

// WithLatency makes every operation sleep for d before touching the table,
// simulating a slower store
func (t *UserPointTable) WithLatency(d time.Duration) *UserPointTable {
	t.latency = d
	return t
}

// SelectByID returns the balance record for a user, or a zero-valued record
// when the user has no prior activity
func (t *UserPointTable) SelectByID(_ context.Context, userID uint64) (*entity.UserPoint, error) {
	t.simulateLatency()

	t.mu.RLock()
	defer t.mu.RUnlock()

	if record, ok := t.table[userID]; ok {
		copied := record
		return &copied, nil
	}
	return entity.EmptyUserPoint(userID, t.timeProvider.NowUnixMilli()), nil
}

// InsertOrUpdate atomically writes the new balance and stamps it with the
// current time
func (t *UserPointTable) InsertOrUpdate(_ context.Context, userID uint64, point int64) (*entity.UserPoint, error) {
	t.simulateLatency()

	t.mu.Lock()
	defer t.mu.Unlock()

	record := entity.UserPoint{
		ID:           userID,
		Point:        point,
		UpdateMillis: t.timeProvider.NowUnixMilli(),
	}
	t.table[userID] = record

	copied := record
	return &copied, nil
}

func (t *UserPointTable) simulateLatency() {
	if t.latency > 0 {
		t.timeProvider.Sleep(t.latency)
	}
}
