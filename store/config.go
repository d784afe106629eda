package store

import "time"

// Config holds configuration for the Store.
type Config struct {
	// Table is the name of the key/value table. It needs a string partition
	// key "pk" and a string sort key "sk".
	// Default: "arbor_store"
	Table string

	// Namespace prefixes every partition key so several applications can
	// share one table. Clear only removes the keys of its own namespace.
	// Default: "default"
	Namespace string

	// NumShards is the number of partitions the namespace is spread over.
	// Higher values increase write throughput but Keys and Clear query every
	// shard.
	// Default: 1 (no sharding, single query)
	// Max: 256
	NumShards int

	// TTL is how long a written value stays readable. Expired items read as
	// missing until DynamoDB removes them.
	// Default: 0 (values never expire)
	TTL time.Duration

	// MaxBatchRetries bounds how often unprocessed batch items are resent
	// before the write fails with ErrUnprocessed.
	// Default: 5
	MaxBatchRetries int

	// RetryDelay is the base backoff between batch retries. The n-th retry
	// waits n times this long.
	// Default: 50ms
	RetryDelay time.Duration
}

// DefaultConfig returns sensible defaults for small datasets.
func DefaultConfig() Config {
	return Config{
		Table:           "arbor_store",
		Namespace:       "default",
		NumShards:       1,
		MaxBatchRetries: 5,
		RetryDelay:      50 * time.Millisecond,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.Table == "" {
		c.Table = "arbor_store"
	}
	if c.Namespace == "" {
		c.Namespace = "default"
	}
	if c.NumShards < 1 {
		c.NumShards = 1
	}
	if c.NumShards > 256 {
		c.NumShards = 256
	}
	if c.TTL < 0 {
		c.TTL = 0
	}
	if c.MaxBatchRetries < 1 {
		c.MaxBatchRetries = 5
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = 50 * time.Millisecond
	}
}
