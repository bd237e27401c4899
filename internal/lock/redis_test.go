package lock

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a live Redis; set REDIS_URL to run them.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisLocker_Exclusive(t *testing.T) {
	rdb := redisClient(t)
	l := NewRedisLocker(rdb, 5*time.Second, "test-lock")
	key := uuid.NewString()

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, key)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	unlock()

	unlock2, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	unlock2()
}

func TestRedisLocker_KeyExpires(t *testing.T) {
	rdb := redisClient(t)
	l := NewRedisLocker(rdb, 100*time.Millisecond, "test-lock")
	key := uuid.NewString()

	_, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	unlock, err := l.Lock(ctx, key)
	require.NoError(t, err)
	unlock()
}

func TestRedisLocker_Unconfigured(t *testing.T) {
	_, err := NewRedisLocker(nil, 0, "").Lock(context.Background(), "k")
	assert.Error(t, err)
}
