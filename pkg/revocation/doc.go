// Package revocation records revoked token identifiers (jti) for a bounded
// time.
//
// A revocation record is a presence flag with a TTL. The token engine writes
// one when a token is invalidated and reads it on every validation; it never
// deletes records itself. Expiry is the store's job, so records disappear at
// most TTL after being written and the store cannot grow without bound.
//
// Two backends are provided:
//
//   - MemoryStore keeps records in process memory with lazy expiry on read and
//     a periodic sweeper. Suitable for a single instance.
//   - RedisStore keeps records in Redis using SET NX EX, so every instance that
//     validates tokens sees revocations made by any other instance.
//
// # Usage
//
//	store := revocation.NewMemoryStore(revocation.WithCleanupInterval(time.Minute))
//	defer store.Close()
//
//	if err := store.MarkRevoked(ctx, jti, 30*time.Second); err != nil {
//		// handle error
//	}
//	revoked, err := store.IsRevoked(ctx, jti)
//
// With Redis:
//
//	client, err := redis.Connect(ctx, redisCfg)
//	store := revocation.NewRedisStore(client, revocation.WithKeyPrefix("invalid_token:"))
//
// Both MarkRevoked implementations are idempotent: marking an already revoked
// identifier leaves the existing record untouched and returns nil.
package revocation
