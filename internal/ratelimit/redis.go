package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

const keyPrefix = "ratelimit:"

// allowScript opens the window with the first request and only counts
// requests that are let through.
var allowScript = redis.NewScript(`
local count = tonumber(redis.call("GET", KEYS[1]) or "0")
local limit = tonumber(ARGV[1])
if count >= limit then
  return {0, count, redis.call("PTTL", KEYS[1])}
end
count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return {1, count, redis.call("PTTL", KEYS[1])}
`)

// RedisStore shares windows between instances through a redis server.
type RedisStore struct {
	client redis.Scripter
	clock  clock.Clock
}

func NewRedisStore(client redis.Scripter, clk clock.Clock) *RedisStore {
	return &RedisStore{client: client, clock: clk}
}

func (s *RedisStore) Allow(ctx context.Context, key string, limit int, d time.Duration) (Result, error) {
	res, err := allowScript.Run(ctx, s.client, []string{keyPrefix + key}, limit, d.Milliseconds()).Result()
	if err != nil {
		return Result{}, domain.Unavailable(err, "rate limit store")
	}
	values, ok := res.([]interface{})
	if !ok || len(values) != 3 {
		return Result{}, domain.Unavailable(fmt.Errorf("unexpected script result %v", res), "rate limit store")
	}
	allowed, _ := values[0].(int64)
	count, _ := values[1].(int64)
	ttl, _ := values[2].(int64)
	if ttl < 0 {
		ttl = d.Milliseconds()
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   allowed == 1,
		Remaining: remaining,
		ResetAt:   s.clock.Now().Add(time.Duration(ttl) * time.Millisecond),
	}, nil
}
