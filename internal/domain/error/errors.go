package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientPoint = 4001
	CodeInvalidAmount     = 4002
	CodeInvalidUserID     = 4003
	CodeAmountOverflow    = 4006
	CodeUserPointNotFound = 4040
	CodeLockTimeout       = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientPoint is returned when a use would drive the balance below zero
	ErrInsufficientPoint = errors.New("insufficient point balance")

	// ErrInvalidAmount is returned when a charge/use amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("invalid id")

	// ErrAmountOverflow is returned when a charge would overflow the balance
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrLockTimeout is returned when the per-user lock cannot be acquired in time
	ErrLockTimeout = errors.New("timed out acquiring user lock")

	// ErrUserPointNotFound is returned by stores that surface absence as an error.
	// The repositories translate it into a zero-valued record before it reaches
	// the service layer.
	ErrUserPointNotFound = errors.New("user point record not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientPoint):
		return CodeInsufficientPoint
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrUserPointNotFound):
		return CodeUserPointNotFound
	case errors.Is(err, ErrLockTimeout):
		return CodeLockTimeout
	default:
		return CodeInternalServer
	}
}

// NewInvalidAmountError wraps ErrInvalidAmount with the attempted action
// ("charge" or "use") so the message names what the caller tried to do.
func NewInvalidAmountError(action string) error {
	return fmt.Errorf("%w: %s amount must be positive", ErrInvalidAmount, action)
}

// InsufficientPointError provides detailed error information for insufficient balance
type InsufficientPointError struct {
	UserID       uint64
	Amount       int64
	CurrentPoint int64
}

// Error implements the error interface
func (e *InsufficientPointError) Error() string {
	return fmt.Sprintf("insufficient point balance for user %d: required %d, available %d",
		e.UserID, e.Amount, e.CurrentPoint)
}

// Is checks if the target error is an ErrInsufficientPoint
func (e *InsufficientPointError) Is(target error) bool {
	return target == ErrInsufficientPoint
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientPointError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "insufficient_point",
		"user_id":       e.UserID,
		"amount":        e.Amount,
		"current_point": e.CurrentPoint,
		"error_code":    CodeInsufficientPoint,
	}
}

// NewInsufficientPointError creates a new detailed insufficient balance error
func NewInsufficientPointError(userID uint64, amount, currentPoint int64) error {
	return &InsufficientPointError{
		UserID:       userID,
		Amount:       amount,
		CurrentPoint: currentPoint,
	}
}

// LockTimeoutError provides details about a failed lock acquisition
type LockTimeoutError struct {
	Key            string
	TimeoutSeconds int64
}

// Error implements the error interface
func (e *LockTimeoutError) Error() string {
	return fmt.Sprintf("timed out acquiring lock for key %s after %ds", e.Key, e.TimeoutSeconds)
}

// Is checks if the target error is an ErrLockTimeout
func (e *LockTimeoutError) Is(target error) bool {
	return target == ErrLockTimeout
}

// LogFields returns a map of fields for structured logging
func (e *LockTimeoutError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "lock_timeout",
		"lock_key":        e.Key,
		"timeout_seconds": e.TimeoutSeconds,
		"error_code":      CodeLockTimeout,
	}
}

// NewLockTimeoutError creates a new detailed lock timeout error
func NewLockTimeoutError(key string, timeoutSeconds int64) error {
	return &LockTimeoutError{Key: key, TimeoutSeconds: timeoutSeconds}
}

// IsInsufficientPointError checks if the error is related to insufficient balance
func IsInsufficientPointError(err error) bool {
	return errors.Is(err, ErrInsufficientPoint)
}

// IsLockTimeoutError checks if the error is a lock acquisition timeout
func IsLockTimeoutError(err error) bool {
	return errors.Is(err, ErrLockTimeout)
}

// IsValidationError checks if the error is a caller-input validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountOverflow)
}
