package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "insufficient point", err: ErrInsufficientPoint, expectedCode: CodeInsufficientPoint},
		{name: "invalid amount", err: ErrInvalidAmount, expectedCode: CodeInvalidAmount},
		{name: "invalid user id", err: ErrInvalidUserID, expectedCode: CodeInvalidUserID},
		{name: "amount overflow", err: ErrAmountOverflow, expectedCode: CodeAmountOverflow},
		{name: "user point not found", err: ErrUserPointNotFound, expectedCode: CodeUserPointNotFound},
		{name: "lock timeout", err: ErrLockTimeout, expectedCode: CodeLockTimeout},
		{name: "unknown error", err: errors.New("boom"), expectedCode: CodeInternalServer},
		{name: "wrapped invalid amount", err: fmt.Errorf("context: %w", ErrInvalidAmount), expectedCode: CodeInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrorCode(tt.err))
		})
	}
}

func TestNewInvalidAmountError(t *testing.T) {
	chargeErr := NewInvalidAmountError("charge")
	useErr := NewInvalidAmountError("use")

	assert.ErrorIs(t, chargeErr, ErrInvalidAmount)
	assert.Contains(t, chargeErr.Error(), "charge amount must be positive")
	assert.ErrorIs(t, useErr, ErrInvalidAmount)
	assert.Contains(t, useErr.Error(), "use amount must be positive")
}

func TestInsufficientPointError(t *testing.T) {
	err := NewInsufficientPointError(3, 500, 100)

	assert.ErrorIs(t, err, ErrInsufficientPoint)
	assert.Contains(t, err.Error(), "user 3")
	assert.Contains(t, err.Error(), "required 500")
	assert.Contains(t, err.Error(), "available 100")

	var detailed *InsufficientPointError
	assert.ErrorAs(t, err, &detailed)
	fields := detailed.LogFields()
	assert.Equal(t, uint64(3), fields["user_id"])
	assert.Equal(t, CodeInsufficientPoint, fields["error_code"])
}

func TestLockTimeoutError(t *testing.T) {
	err := NewLockTimeoutError("42", 5)

	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.True(t, IsLockTimeoutError(err))
	assert.Contains(t, err.Error(), "key 42")
	assert.Contains(t, err.Error(), "5s")

	var detailed *LockTimeoutError
	assert.ErrorAs(t, err, &detailed)
	fields := detailed.LogFields()
	assert.Equal(t, "42", fields["lock_key"])
	assert.Equal(t, int64(5), fields["timeout_seconds"])
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsInsufficientPointError(NewInsufficientPointError(1, 2, 1)))
	assert.False(t, IsInsufficientPointError(ErrInvalidAmount))

	assert.True(t, IsValidationError(ErrInvalidUserID))
	assert.True(t, IsValidationError(NewInvalidAmountError("use")))
	assert.True(t, IsValidationError(ErrAmountOverflow))
	assert.False(t, IsValidationError(ErrLockTimeout))
	assert.False(t, IsValidationError(ErrInsufficientPoint))
}
