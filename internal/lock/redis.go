package lock

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisLocker is a Locker shared by every API instance pointing at the same
// Redis. Keys expire after ttl so a crashed holder cannot wedge a doctor.
type RedisLocker struct {
	rdb    *redis.Client
	ttl    time.Duration
	retry  time.Duration
	prefix string
}

// release deletes the key only if it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedisLocker(rdb *redis.Client, ttl time.Duration, prefix string) *RedisLocker {
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "lock"
	}
	return &RedisLocker{rdb: rdb, ttl: ttl, retry: 25 * time.Millisecond, prefix: prefix}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	if l.rdb == nil {
		return nil, errors.New("redis locker not configured")
	}

	k := l.key(key)
	token := uuid.NewString()

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		ok, err := l.rdb.SetNX(ctx, k, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, err
		}
		if ok {
			return func() {
				// the request context may already be done
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, l.rdb, []string{k}, token).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) key(key string) string {
	return l.prefix + ":" + key
}

var _ Locker = (*RedisLocker)(nil)
