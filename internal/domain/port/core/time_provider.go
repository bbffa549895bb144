package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain.
// Balance timestamps are wall-clock milliseconds, so the provider exposes
// NowUnixMilli next to the usual time.Time accessor.
type TimeProvider interface {
	Now() time.Time
	NowUnixMilli() int64
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
