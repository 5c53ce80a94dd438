// Package redis connects to Redis with retries and exposes a readiness
// check. The revocation store and the rate limiter use the returned client
// when REVOCATION_BACKEND=redis.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	ready := redis.Healthcheck(client)
package redis
