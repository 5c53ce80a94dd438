package revocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tokensvc/pkg/revocation"
)

func newRedisStore(t *testing.T, opts ...revocation.RedisStoreOption) (*revocation.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return revocation.NewRedisStore(client, opts...), mr
}

func TestRedisStore_MarkAndCheck(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.MarkRevoked(ctx, "jti-1", 30*time.Second))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.True(t, mr.Exists(revocation.DefaultKeyPrefix+"jti-1"))
	assert.Equal(t, 30*time.Second, mr.TTL(revocation.DefaultKeyPrefix+"jti-1"))

	revoked, err = store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisStore_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.MarkRevoked(ctx, "jti", 30*time.Second))
	mr.FastForward(31 * time.Second)

	revoked, err := store.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisStore_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.MarkRevoked(ctx, "jti", 30*time.Second))
	mr.FastForward(20 * time.Second)
	require.NoError(t, store.MarkRevoked(ctx, "jti", 30*time.Second))

	assert.Equal(t, 10*time.Second, mr.TTL(revocation.DefaultKeyPrefix+"jti"), "second mark must not extend the record")
	assert.Len(t, mr.Keys(), 1)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t, revocation.WithKeyPrefix("svc:revoked:"))

	require.NoError(t, store.MarkRevoked(ctx, "jti", time.Minute))
	assert.Equal(t, []string{"svc:revoked:jti"}, mr.Keys())
}

func TestRedisStore_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newRedisStore(t)

	assert.ErrorIs(t, store.MarkRevoked(ctx, "", time.Second), revocation.ErrEmptyTokenID)
	assert.ErrorIs(t, store.MarkRevoked(ctx, "jti", -time.Second), revocation.ErrInvalidTTL)
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t)
	mr.Close()

	err := store.MarkRevoked(ctx, "jti", time.Second)
	assert.ErrorIs(t, err, revocation.ErrStoreUnavailable)

	_, err = store.IsRevoked(ctx, "jti")
	assert.ErrorIs(t, err, revocation.ErrStoreUnavailable)
}

func TestStoresImplementInterface(t *testing.T) {
	t.Parallel()

	var _ revocation.Store = (*revocation.MemoryStore)(nil)
	var _ revocation.Store = (*revocation.RedisStore)(nil)
}
