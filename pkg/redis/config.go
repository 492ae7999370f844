package redis

import "time"

// Config describes the Redis connection backing shared form state.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // Format: redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"formulate"` // Prefix for every key written by the form store.
	ScanCount      int64         `env:"REDIS_SCAN_COUNT" envDefault:"100"`       // COUNT hint for SCAN when listing forms.
}
