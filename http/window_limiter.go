package http

import (
	"context"
	"time"

	"home-goal/repository"
)

// WindowLimiter allows capacity requests per key in each fixed window,
// counting through a shared CounterRepository.
type WindowLimiter struct {
	counters repository.CounterRepository
	capacity int64
	window   time.Duration
}

func NewWindowLimiter(counters repository.CounterRepository, capacity int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{
		counters: counters,
		capacity: int64(capacity),
		window:   window,
	}
}

func (w *WindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := w.counters.Increment(ctx, key, w.window)
	if err != nil {
		return false, err
	}
	return count <= w.capacity, nil
}
