package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/rafflemart/internal/domain"
	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, clock.NewFixedClock(start)), mr
}

func TestRedisStore_Allow(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		res, err := store.Allow(ctx, "1.2.3.4", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d", i)
		assert.Equal(t, 5-i, res.Remaining)
	}

	res, err := store.Allow(ctx, "1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, start.Add(time.Minute), res.ResetAt)

	count, err := mr.Get(keyPrefix + "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "5", count)

	mr.FastForward(time.Minute)

	res, err = store.Allow(ctx, "1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 4, res.Remaining)
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Allow(context.Background(), "k", 5, time.Minute)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
