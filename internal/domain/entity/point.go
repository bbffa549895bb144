package entity

import (
	"math"

	errs "github.com/amirhossein-jamali/point-processor/internal/domain/error"
)

// UserPoint represents a user's current point balance
type UserPoint struct {
	ID           uint64 // Unique identifier for the user
	Point        int64  // Current point balance, never negative
	UpdateMillis int64  // Wall-clock milliseconds of the last balance write
}

// EmptyUserPoint returns the zero-valued balance record for a user that has
// no prior activity. Queries and first charges both start from this.
func EmptyUserPoint(userID uint64, nowMillis int64) *UserPoint {
	return &UserPoint{
		ID:           userID,
		Point:        0,
		UpdateMillis: nowMillis,
	}
}

// AfterCharge returns the balance that would result from charging amount.
// Fails with ErrAmountOverflow if the addition would exceed int64 range.
func (u *UserPoint) AfterCharge(amount int64) (int64, error) {
	if amount > math.MaxInt64-u.Point {
		return 0, errs.ErrAmountOverflow
	}
	return u.Point + amount, nil
}

// AfterUse returns the balance that would result from using amount.
// Fails with ErrInsufficientPoint if the balance would go negative.
func (u *UserPoint) AfterUse(amount int64) (int64, error) {
	if amount > u.Point {
		return 0, errs.NewInsufficientPointError(u.ID, amount, u.Point)
	}
	return u.Point - amount, nil
}

// CanUse reports whether the balance covers a deduction of amount
func (u *UserPoint) CanUse(amount int64) bool {
	return u.Point >= amount
}
