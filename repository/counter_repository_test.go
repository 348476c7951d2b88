package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCounter_FirstHitSetsExpiry(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := NewRedisCounter(db, "rl:")

	mock.ExpectIncr("rl:10.0.0.1").SetVal(1)
	mock.ExpectPExpire("rl:10.0.0.1", time.Minute).SetVal(true)

	count, err := counter.Increment(context.Background(), "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCounter_LaterHitKeepsExpiry(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := NewRedisCounter(db, "rl:")

	mock.ExpectIncr("rl:10.0.0.1").SetVal(4)
	mock.ExpectPTTL("rl:10.0.0.1").SetVal(42 * time.Second)

	count, err := counter.Increment(context.Background(), "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCounter_IncrError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := NewRedisCounter(db, "rl:")

	mock.ExpectIncr("rl:x").SetErr(errors.New("connection refused"))

	_, err := counter.Increment(context.Background(), "x", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRedisCounter_ExpireError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := NewRedisCounter(db, "rl:")

	mock.ExpectIncr("rl:x").SetVal(1)
	mock.ExpectPExpire("rl:x", time.Second).SetErr(errors.New("readonly"))

	_, err := counter.Increment(context.Background(), "x", time.Second)
	assert.Error(t, err)
}

func TestRedisCounter_RestoresMissingExpiry(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := NewRedisCounter(db, "rl:")
	ctx := context.Background()

	mock.ExpectIncr("rl:ip").SetVal(1)
	mock.ExpectPExpire("rl:ip", time.Minute).SetErr(errors.New("readonly"))
	mock.ExpectIncr("rl:ip").SetVal(2)
	mock.ExpectPTTL("rl:ip").SetVal(noExpiry)
	mock.ExpectPExpire("rl:ip", time.Minute).SetVal(true)

	_, err := counter.Increment(ctx, "ip", time.Minute)
	require.Error(t, err)

	count, err := counter.Increment(ctx, "ip", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCounter_PTTLError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := NewRedisCounter(db, "rl:")

	mock.ExpectIncr("rl:x").SetVal(3)
	mock.ExpectPTTL("rl:x").SetErr(errors.New("timeout"))

	_, err := counter.Increment(context.Background(), "x", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pttl")
}

func TestMockCounter_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	counter := NewMockCounter().WithClock(func() time.Time { return now })
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, err := counter.Increment(ctx, "a", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	other, _ := counter.Increment(ctx, "b", time.Minute)
	assert.Equal(t, int64(1), other)

	now = now.Add(time.Minute)
	count, _ := counter.Increment(ctx, "a", time.Minute)
	assert.Equal(t, int64(1), count)
}
