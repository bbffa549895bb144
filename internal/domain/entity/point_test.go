package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/point-processor/internal/domain/error"
)

func TestEmptyUserPoint(t *testing.T) {
	nowMillis := int64(1700000000000)

	userPoint := EmptyUserPoint(42, nowMillis)

	assert.Equal(t, uint64(42), userPoint.ID)
	assert.Equal(t, int64(0), userPoint.Point)
	assert.Equal(t, nowMillis, userPoint.UpdateMillis)
}

func TestUserPoint_AfterCharge(t *testing.T) {
	tests := []struct {
		name          string
		currentPoint  int64
		amount        int64
		expectedPoint int64
		expectedError error
	}{
		{
			name:          "charge onto zero balance",
			currentPoint:  0,
			amount:        500000,
			expectedPoint: 500000,
		},
		{
			name:          "charge onto existing balance",
			currentPoint:  1000,
			amount:        2500,
			expectedPoint: 3500,
		},
		{
			name:          "charge up to the exact maximum",
			currentPoint:  math.MaxInt64 - 100,
			amount:        100,
			expectedPoint: math.MaxInt64,
		},
		{
			name:          "charge overflowing the balance",
			currentPoint:  math.MaxInt64 - 99,
			amount:        100,
			expectedError: errs.ErrAmountOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userPoint := &UserPoint{ID: 1, Point: tt.currentPoint}

			newPoint, err := userPoint.AfterCharge(tt.amount)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPoint, newPoint)
			// The entity itself is never mutated by the computation
			assert.Equal(t, tt.currentPoint, userPoint.Point)
		})
	}
}

func TestUserPoint_AfterUse(t *testing.T) {
	t.Run("should deduct within the balance", func(t *testing.T) {
		userPoint := &UserPoint{ID: 1, Point: 1000}

		newPoint, err := userPoint.AfterUse(400)

		assert.NoError(t, err)
		assert.Equal(t, int64(600), newPoint)
	})

	t.Run("should allow using the full balance", func(t *testing.T) {
		userPoint := &UserPoint{ID: 1, Point: 1000}

		newPoint, err := userPoint.AfterUse(1000)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), newPoint)
	})

	t.Run("should fail when amount exceeds balance", func(t *testing.T) {
		userPoint := &UserPoint{ID: 7, Point: 300}

		_, err := userPoint.AfterUse(301)

		assert.ErrorIs(t, err, errs.ErrInsufficientPoint)

		var detailed *errs.InsufficientPointError
		assert.ErrorAs(t, err, &detailed)
		assert.Equal(t, uint64(7), detailed.UserID)
		assert.Equal(t, int64(301), detailed.Amount)
		assert.Equal(t, int64(300), detailed.CurrentPoint)
	})
}

func TestUserPoint_CanUse(t *testing.T) {
	userPoint := &UserPoint{ID: 1, Point: 100}

	assert.True(t, userPoint.CanUse(100))
	assert.True(t, userPoint.CanUse(1))
	assert.False(t, userPoint.CanUse(101))
}

func TestTransactionType(t *testing.T) {
	assert.True(t, TypeCharge.IsValid())
	assert.True(t, TypeUse.IsValid())
	assert.False(t, TransactionType("REFUND").IsValid())

	assert.Equal(t, "charge", TypeCharge.Action())
	assert.Equal(t, "use", TypeUse.Action())
}
