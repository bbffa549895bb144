package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
)

// MockUserPointRepository is a mock implementation of the UserPointRepository interface
type MockUserPointRepository struct {
	mock.Mock
}

// SelectByID mocks reading the balance record for a user
func (m *MockUserPointRepository) SelectByID(ctx context.Context, userID uint64) (*entity.UserPoint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserPoint), args.Error(1)
}

// InsertOrUpdate mocks the atomic balance upsert
func (m *MockUserPointRepository) InsertOrUpdate(ctx context.Context, userID uint64, point int64) (*entity.UserPoint, error) {
	args := m.Called(ctx, userID, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserPoint), args.Error(1)
}

// MockPointHistoryRepository is a mock implementation of the PointHistoryRepository interface
type MockPointHistoryRepository struct {
	mock.Mock
}

// Insert mocks appending one history record
func (m *MockPointHistoryRepository) Insert(ctx context.Context, userID uint64, point int64, txType entity.TransactionType, timeMillis int64) (*entity.PointHistory, error) {
	args := m.Called(ctx, userID, point, txType, timeMillis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PointHistory), args.Error(1)
}

// SelectAllByUserID mocks reading a user's history in insertion order
func (m *MockPointHistoryRepository) SelectAllByUserID(ctx context.Context, userID uint64) ([]entity.PointHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PointHistory), args.Error(1)
}
