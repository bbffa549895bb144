package persistence

import (
	"context"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
)

// UserPointRepository defines the balance store consumed by the point service.
// Implementations must make each call atomic on its own; serialization of the
// read-compute-write sequence is the service's responsibility.
type UserPointRepository interface {
	// SelectByID retrieves the current balance record for a user.
	// A user with no prior activity yields a zero-valued record, not an error.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the underlying store is unreachable
	SelectByID(ctx context.Context, userID uint64) (*entity.UserPoint, error)

	// InsertOrUpdate atomically writes the new balance for a user and returns
	// the stored record carrying a fresh store-assigned timestamp.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the underlying store is unreachable
	InsertOrUpdate(ctx context.Context, userID uint64, point int64) (*entity.UserPoint, error)
}

// PointHistoryRepository defines the append-only transaction log per user
type PointHistoryRepository interface {
	// Insert appends one history record and returns it with a freshly
	// assigned sequence id. Records are immutable once created.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the underlying store is unreachable
	Insert(ctx context.Context, userID uint64, point int64, txType entity.TransactionType, timeMillis int64) (*entity.PointHistory, error)

	// SelectAllByUserID returns all history records for a user in insertion
	// order. An empty slice means no prior activity.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the underlying store is unreachable
	SelectAllByUserID(ctx context.Context, userID uint64) ([]entity.PointHistory, error)
}
