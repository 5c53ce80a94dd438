package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of Redis so revocations are shared by
// every instance pointing at the same database.
type RedisStore struct {
	db     redis.UniversalClient
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the key namespace. Defaults to DefaultKeyPrefix.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.prefix = prefix
	}
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{
		db:     client,
		prefix: DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// MarkRevoked uses SET NX so an existing record keeps its original TTL.
func (rs *RedisStore) MarkRevoked(ctx context.Context, jti string, ttl time.Duration) error {
	if err := validate(jti, ttl); err != nil {
		return err
	}

	err := rs.db.SetNX(ctx, rs.key(jti), 1, ttl).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (rs *RedisStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}

	n, err := rs.db.Exists(ctx, rs.key(jti)).Result()
	if err != nil {
		return false, errors.Join(ErrStoreUnavailable, err)
	}
	return n > 0, nil
}

func (rs *RedisStore) key(jti string) string {
	return rs.prefix + jti
}
