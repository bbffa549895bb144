package core

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTimeProvider is a mock implementation of the core.TimeProvider interface
type MockTimeProvider struct {
	mock.Mock
}

// Now mocks returning the current time
func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// NowUnixMilli mocks returning the current time in milliseconds
func (m *MockTimeProvider) NowUnixMilli() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

// Since mocks returning the elapsed time since t
func (m *MockTimeProvider) Since(t time.Time) time.Duration {
	args := m.Called(t)
	return args.Get(0).(time.Duration)
}

// Sleep mocks pausing the current goroutine
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.Called(d)
}

// WithTimeout mocks deriving a timeout context
func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)
	return args.Get(0).(context.Context), args.Get(1).(context.CancelFunc)
}
