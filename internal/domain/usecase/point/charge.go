package point

import (
	"context"

	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
)

// Charge adds amount to the user's balance and appends a CHARGE history
// record carrying the resulting balance. The read-compute-write sequence runs
// under the user's lock so concurrent charges never lose updates.
func (s *Service) Charge(ctx context.Context, userID uint64, amount int64) (*entity.UserPoint, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := validateAmount(amount, entity.TypeCharge); err != nil {
		return nil, err
	}

	var updated *entity.UserPoint
	err := s.locks.WithLock(ctx, userID, func() error {
		var lockedErr error
		updated, lockedErr = s.applyTransaction(ctx, userID, amount, entity.TypeCharge)
		return lockedErr
	})
	if err != nil {
		s.logger.Warn("Charge rejected", map[string]any{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Points charged", map[string]any{
		"user_id":   userID,
		"amount":    amount,
		"new_point": updated.Point,
	})
	return updated, nil
}

// applyTransaction performs the locked portion of a charge/use: re-read the
// latest balance, compute the new total, upsert it and append the history
// record. Caller must hold the user's lock.
func (s *Service) applyTransaction(ctx context.Context, userID uint64, amount int64, txType entity.TransactionType) (*entity.UserPoint, error) {
	current, err := s.userPointRepo.SelectByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var newPoint int64
	if txType == entity.TypeCharge {
		newPoint, err = current.AfterCharge(amount)
	} else {
		newPoint, err = current.AfterUse(amount)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.userPointRepo.InsertOrUpdate(ctx, userID, newPoint)
	if err != nil {
		return nil, err
	}

	if _, err := s.historyRepo.Insert(ctx, userID, updated.Point, txType, updated.UpdateMillis); err != nil {
		// The balance write already succeeded; it stands. The record gap is
		// surfaced to the caller and logged with the written balance.
		s.logger.Error("History append failed after balance write", map[string]any{
			"user_id":       userID,
			"type":          string(txType),
			"written_point": updated.Point,
			"error":         err.Error(),
		})
		return nil, err
	}

	return updated, nil
}
