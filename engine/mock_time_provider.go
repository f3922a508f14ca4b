package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually stepped clock for driving a Loop in tests
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider creates a mock clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the frozen time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Since reports the mocked time elapsed since t
func (m *MockTimeProvider) Since(t time.Time) time.Duration {
	return m.Now().Sub(t)
}
