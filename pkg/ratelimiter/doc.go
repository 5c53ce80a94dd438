// Package ratelimiter implements a token bucket limiter with pluggable
// storage and an HTTP middleware.
//
// A Bucket holds Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request consumes one token; a request that finds the
// bucket short is denied without consuming anything. Bucket state lives in a
// Store: MemoryStore for a single process, RedisStore to share limits across
// instances (the refill arithmetic runs as a Lua script so it is atomic).
//
//	bucket, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.PerInterval(100, time.Minute))
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP))
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response, plus Retry-After when it answers 429.
package ratelimiter
