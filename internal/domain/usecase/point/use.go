package point

import (
	"context"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-processor/internal/domain/error"
)

// Use deducts amount from the user's balance and appends a USE history
// record. The sufficiency check happens against the balance re-read under the
// lock, so a use that would go negative never mutates anything.
func (s *Service) Use(ctx context.Context, userID uint64, amount int64) (*entity.UserPoint, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateAmount(amount, entity.TypeUse); err != nil {
		return nil, err
	}

	var updated *entity.UserPoint
	err := s.locks.WithLock(ctx, userID, func() error {
		var lockedErr error
		updated, lockedErr = s.applyTransaction(ctx, userID, amount, entity.TypeUse)
		return lockedErr
	})
	if err != nil {
		if errs.IsInsufficientPointError(err) {
			s.logger.Warn("Use rejected, insufficient balance", map[string]any{
				"user_id": userID,
				"amount":  amount,
			})
		} else {
			s.logger.Warn("Use rejected", map[string]any{
				"user_id": userID,
				"amount":  amount,
				"error":   err.Error(),
			})
		}
		return nil, err
	}

	s.logger.Info("Points used", map[string]any{
		"user_id":   userID,
		"amount":    amount,
		"new_point": updated.Point,
	})
	return updated, nil
}
