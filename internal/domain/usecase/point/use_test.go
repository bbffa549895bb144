package point

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-processor/internal/domain/error"
	"github.com/amirhossein-jamali/point-processor/internal/domain/lock"
	mpersistence "github.com/amirhossein-jamali/point-processor/mocks/port/persistence"
)

func TestService_Use(t *testing.T) {
	ctx := context.Background()

	t.Run("should deduct from a sufficient balance", func(t *testing.T) {
		mockPointRepo := new(mpersistence.MockUserPointRepository)
		mockHistoryRepo := new(mpersistence.MockPointHistoryRepository)

		mockPointRepo.On("SelectByID", ctx, uint64(1)).
			Return(&entity.UserPoint{ID: 1, Point: 500, UpdateMillis: 1000}, nil)
		mockPointRepo.On("InsertOrUpdate", ctx, uint64(1), int64(300)).
			Return(&entity.UserPoint{ID: 1, Point: 300, UpdateMillis: 2000}, nil)
		mockHistoryRepo.On("Insert", ctx, uint64(1), int64(300), entity.TypeUse, int64(2000)).
			Return(&entity.PointHistory{ID: 1, UserID: 1, Point: 300, Type: entity.TypeUse, TimeMillis: 2000}, nil)

		service := NewPointService(mockPointRepo, mockHistoryRepo, lock.NewKeyedLock(time.Second), newTestLogger())

		updated, err := service.Use(ctx, 1, 200)

		assert.NoError(t, err)
		assert.Equal(t, int64(300), updated.Point)
		mockPointRepo.AssertExpectations(t)
		mockHistoryRepo.AssertExpectations(t)
	})

	t.Run("should allow spending the balance down to zero", func(t *testing.T) {
		mockPointRepo := new(mpersistence.MockUserPointRepository)
		mockHistoryRepo := new(mpersistence.MockPointHistoryRepository)

		mockPointRepo.On("SelectByID", ctx, uint64(1)).
			Return(&entity.UserPoint{ID: 1, Point: 500, UpdateMillis: 1000}, nil)
		mockPointRepo.On("InsertOrUpdate", ctx, uint64(1), int64(0)).
			Return(&entity.UserPoint{ID: 1, Point: 0, UpdateMillis: 2000}, nil)
		mockHistoryRepo.On("Insert", ctx, uint64(1), int64(0), entity.TypeUse, int64(2000)).
			Return(&entity.PointHistory{ID: 1, UserID: 1, Point: 0, Type: entity.TypeUse, TimeMillis: 2000}, nil)

		service := NewPointService(mockPointRepo, mockHistoryRepo, lock.NewKeyedLock(time.Second), newTestLogger())

		updated, err := service.Use(ctx, 1, 500)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), updated.Point)
	})

	t.Run("should reject an insufficient balance without writing", func(t *testing.T) {
		mockPointRepo := new(mpersistence.MockUserPointRepository)
		mockHistoryRepo := new(mpersistence.MockPointHistoryRepository)

		mockPointRepo.On("SelectByID", ctx, uint64(1)).
			Return(&entity.UserPoint{ID: 1, Point: 100, UpdateMillis: 1000}, nil)

		service := NewPointService(mockPointRepo, mockHistoryRepo, lock.NewKeyedLock(time.Second), newTestLogger())

		_, err := service.Use(ctx, 1, 101)

		assert.ErrorIs(t, err, errs.ErrInsufficientPoint)
		var detailed *errs.InsufficientPointError
		assert.ErrorAs(t, err, &detailed)
		assert.Equal(t, int64(100), detailed.CurrentPoint)
		assert.Equal(t, int64(101), detailed.Amount)
		mockPointRepo.AssertNotCalled(t, "InsertOrUpdate")
		mockHistoryRepo.AssertNotCalled(t, "Insert")
	})

	t.Run("should reject use against an absent user", func(t *testing.T) {
		mockPointRepo := new(mpersistence.MockUserPointRepository)
		mockHistoryRepo := new(mpersistence.MockPointHistoryRepository)

		mockPointRepo.On("SelectByID", ctx, uint64(42)).
			Return(entity.EmptyUserPoint(42, 1000), nil)

		service := NewPointService(mockPointRepo, mockHistoryRepo, lock.NewKeyedLock(time.Second), newTestLogger())

		_, err := service.Use(ctx, 42, 1)

		assert.ErrorIs(t, err, errs.ErrInsufficientPoint)
		mockPointRepo.AssertNotCalled(t, "InsertOrUpdate")
	})

	t.Run("should fail with non-positive amount", func(t *testing.T) {
		mockPointRepo := new(mpersistence.MockUserPointRepository)
		mockHistoryRepo := new(mpersistence.MockPointHistoryRepository)

		service := NewPointService(mockPointRepo, mockHistoryRepo, lock.NewKeyedLock(time.Second), newTestLogger())

		_, err := service.Use(ctx, 1, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Contains(t, err.Error(), "use amount must be positive")
		mockPointRepo.AssertNotCalled(t, "SelectByID")
	})

	t.Run("should fail with invalid user id", func(t *testing.T) {
		mockPointRepo := new(mpersistence.MockUserPointRepository)
		mockHistoryRepo := new(mpersistence.MockPointHistoryRepository)

		service := NewPointService(mockPointRepo, mockHistoryRepo, lock.NewKeyedLock(time.Second), newTestLogger())

		_, err := service.Use(ctx, 0, 100)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should propagate a balance read failure", func(t *testing.T) {
		mockPointRepo := new(mpersistence.MockUserPointRepository)
		mockHistoryRepo := new(mpersistence.MockPointHistoryRepository)

		mockPointRepo.On("SelectByID", ctx, uint64(1)).
			Return(nil, errs.ErrDatabaseConnection)

		service := NewPointService(mockPointRepo, mockHistoryRepo, lock.NewKeyedLock(time.Second), newTestLogger())

		_, err := service.Use(ctx, 1, 100)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
