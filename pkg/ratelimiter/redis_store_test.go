package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokensvc/pkg/ratelimiter"
)

func TestRedisStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := newManualClock()
	store := ratelimiter.NewRedisStore(client, ratelimiter.WithRedisClock(clock.Now))

	tb, err := ratelimiter.NewBucket(store, ratelimiter.PerInterval(2, time.Minute))
	require.NoError(t, err)

	res, err := tb.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)
	assert.Equal(t, clock.Now().Add(time.Minute).UnixMilli(), res.ResetAt.UnixMilli())

	res, err = tb.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Remaining)

	res, err = tb.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	remaining, _, err := store.ConsumeTokens(ctx, "ip", 0, ratelimiter.PerInterval(2, time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, remaining, "denied request must not consume")

	assert.True(t, mr.Exists(ratelimiter.DefaultRedisKeyPrefix+"ip"))
	assert.Positive(t, mr.TTL(ratelimiter.DefaultRedisKeyPrefix+"ip"))

	clock.Advance(time.Minute)
	res, err = tb.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 1, res.Remaining)
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	store := ratelimiter.NewRedisStore(client, ratelimiter.WithRedisKeyPrefix("rl:"))
	_, _, err := store.ConsumeTokens(context.Background(), "ip", 1, ratelimiter.PerInterval(1, time.Second))
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
}
