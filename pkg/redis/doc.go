// Package redis connects to the Redis server that backs shared form state.
//
// Config is populated from the environment (REDIS_URL, REDIS_RETRY_ATTEMPTS,
// REDIS_RETRY_INTERVAL, REDIS_CONNECT_TIMEOUT, REDIS_KEY_PREFIX,
// REDIS_SCAN_COUNT) through pkg/config. Connect retries the initial ping, and
// Healthcheck returns a check suitable for readiness checks:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := binding.NewRedisStore(client, cfg.KeyPrefix, cfg.ScanCount)
//
// Errors wrap the underlying go-redis errors with errors.Join, so both the
// sentinel and the cause can be matched with errors.Is.
package redis
