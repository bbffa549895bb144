package point

import (
	"github.com/amirhossein-jamali/point-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/point-processor/internal/domain/error"
)

// validateUserID checks that the user identifier is positive
func validateUserID(userID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	return nil
}

// validateAmount checks that a charge/use amount is positive. The error
// message names the attempted action.
func validateAmount(amount int64, txType entity.TransactionType) error {
	if amount <= 0 {
		return errs.NewInvalidAmountError(txType.Action())
	}
	return nil
}
