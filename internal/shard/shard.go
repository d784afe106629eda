// Package shard provides shard key generation for the DynamoDB key/value table.
package shard

import (
	"fmt"
	"hash/fnv"

	"github.com/samber/lo"
)

// PartitionKey computes the sharded partition key for a stored key.
// With numShards=1, all keys go to shard "00".
// With numShards>1, keys are distributed across shards based on their hash.
func PartitionKey(namespace, key string, numShards int) string {
	if numShards <= 1 {
		return fmt.Sprintf("%s#00", namespace)
	}
	h := fnv.New32a()
	h.Write([]byte(key))
	shard := h.Sum32() % uint32(numShards)
	return fmt.Sprintf("%s#%02x", namespace, shard)
}

// PartitionKeys returns every partition key of namespace, in shard order.
// Listing a namespace means querying each of them.
func PartitionKeys(namespace string, numShards int) []string {
	if numShards < 1 {
		numShards = 1
	}
	return lo.Times(numShards, func(i int) string {
		return fmt.Sprintf("%s#%02x", namespace, i)
	})
}
