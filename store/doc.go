// Package store provides a string-keyed value store on DynamoDB.
//
// It is the persistence collaborator of the record transforms: values are
// plain strings, and Records, sequences and maps are stored as JSON so they
// can be read back with [Store.GetRecord] in their original key order.
//
// # Table Layout
//
// One table holds every namespace. Items look like:
//
//	pk          "<namespace>#<shard>"   partition key, shard as two hex digits
//	sk          "<key>"                 sort key
//	value       stored string
//	ttl         epoch seconds           only when Config.TTL is set
//	updated_at  RFC 3339 timestamp
//
// Enable DynamoDB TTL on the "ttl" attribute to have expired items removed.
// Until then they are filtered on read.
//
// # Configuration
//
// Use [DefaultConfig] for small datasets (NumShards=1, single queries).
// Increase NumShards for higher write throughput:
//
//	cfg := store.DefaultConfig()
//	cfg.Namespace = "sessions"
//	cfg.NumShards = 16
//	cfg.TTL = 24 * time.Hour
//	s := store.New(dynamodb.NewFromConfig(awsCfg), cfg)
//
// # Batching
//
// [Store.SetMany], [Store.Delete] and [Store.Clear] write in batches of 25.
// Items DynamoDB leaves unprocessed are resent with a linear backoff up to
// Config.MaxBatchRetries times.
//
// # Errors
//
//   - [ErrNotFound] - key doesn't exist or has expired
//   - [ErrEmptyKey] - an empty key was given
//   - [ErrUnprocessed] - batch items were still rejected after every retry
package store
