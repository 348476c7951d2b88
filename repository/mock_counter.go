package repository

import (
	"context"
	"sync"
	"time"
)

type mockWindow struct {
	count   int64
	resetAt time.Time
}

// MockCounter is an in-process CounterRepository for tests and single-node runs.
type MockCounter struct {
	mu      sync.Mutex
	now     func() time.Time
	windows map[string]*mockWindow
}

func NewMockCounter() *MockCounter {
	return &MockCounter{
		now:     time.Now,
		windows: make(map[string]*mockWindow),
	}
}

// WithClock replaces the time source.
func (m *MockCounter) WithClock(now func() time.Time) *MockCounter {
	m.now = now
	return m
}

func (m *MockCounter) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &mockWindow{resetAt: now.Add(window)}
		m.windows[key] = w
	}
	w.count++
	return w.count, nil
}
