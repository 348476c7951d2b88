package repository

import (
	"context"
	"time"
)

// CounterRepository keeps fixed-window request counters.
type CounterRepository interface {
	// Increment adds one to key and returns the count within the current
	// window. The window starts with the first increment.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}
