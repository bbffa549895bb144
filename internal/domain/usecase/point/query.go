package point

import (
	"context"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
)

// GetPoint returns the current balance for a user. Reads never take the
// user's lock: store reads are atomic on their own and a stale-but-recent
// balance is acceptable.
func (s *Service) GetPoint(ctx context.Context, userID uint64) (*entity.UserPoint, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	userPoint, err := s.userPointRepo.SelectByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to read user point", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return userPoint, nil
}

// GetHistories returns all transactions for a user in insertion order, which
// equals the order the lock-serialized writes were applied. A user with no
// activity yields an empty slice.
func (s *Service) GetHistories(ctx context.Context, userID uint64) ([]entity.PointHistory, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	histories, err := s.historyRepo.SelectAllByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to read point histories", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return histories, nil
}
