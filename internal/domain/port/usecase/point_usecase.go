package usecase

import (
	"context"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
)

// PointUseCase defines the operations exposed to the API layer
type PointUseCase interface {
	// GetPoint returns the current balance for a user. A user with no prior
	// activity yields a zero-valued record.
	//
	// Possible errors:
	// - ErrInvalidUserID: If userID is zero
	GetPoint(ctx context.Context, userID uint64) (*entity.UserPoint, error)

	// GetHistories returns all transactions for a user in insertion order.
	// An empty slice means no prior activity.
	//
	// Possible errors:
	// - ErrInvalidUserID: If userID is zero
	GetHistories(ctx context.Context, userID uint64) ([]entity.PointHistory, error)

	// Charge adds amount to the user's balance and appends a CHARGE record.
	// Serialized per user; concurrent calls for the same user never lose updates.
	//
	// Possible errors:
	// - ErrInvalidUserID: If userID is zero
	// - ErrInvalidAmount: If amount is not positive
	// - ErrAmountOverflow: If the new balance would overflow
	// - ErrLockTimeout: If the user's lock cannot be acquired in time
	Charge(ctx context.Context, userID uint64, amount int64) (*entity.UserPoint, error)

	// Use deducts amount from the user's balance and appends a USE record.
	// The balance is untouched when the deduction would go negative.
	//
	// Possible errors:
	// - ErrInvalidUserID: If userID is zero
	// - ErrInvalidAmount: If amount is not positive
	// - ErrInsufficientPoint: If amount exceeds the current balance
	// - ErrLockTimeout: If the user's lock cannot be acquired in time
	Use(ctx context.Context, userID uint64, amount int64) (*entity.UserPoint, error)
}
