package module

import (
	"time"

	"github.com/onflow/flow-witness/model/flow"
)

// ShadowValidationMetrics records the outcome of re-validating locally built
// state witnesses. All methods must be safe for concurrent use.
type ShadowValidationMetrics interface {
	// ShadowValidationFailed counts a failed shadow validation attempt of a chunk.
	ShadowValidationFailed(shard flow.ShardID)

	// WitnessEncoded records the time spent encoding a witness.
	WitnessEncoded(shard flow.ShardID, duration time.Duration)

	// WitnessDecoded records the time spent decoding a witness.
	WitnessDecoded(shard flow.ShardID, duration time.Duration)

	// WitnessSize records the uncompressed and compressed size of an encoded witness, in bytes.
	WitnessSize(shard flow.ShardID, raw int, encoded int)

	// WitnessPreValidated records the time spent pre-validating a witness.
	WitnessPreValidated(shard flow.ShardID, duration time.Duration)

	// WitnessValidated records the time spent on the full validation of a witness.
	WitnessValidated(shard flow.ShardID, duration time.Duration)
}

type CacheMetrics interface {
	// CacheEntries report the total number of cached items
	CacheEntries(resource string, entries uint)
	// CacheHit report the number of times the queried item is found in the cache
	CacheHit(resource string)
	// CacheNotFound records the number of times the queried item was not found in either cache or database.
	CacheNotFound(resource string)
	// CacheMiss report the number of times the queried item is not found in the cache, but found in the database.
	CacheMiss(resource string)
}

// WorkerPoolMetrics tracks the task queue of a worker pool.
type WorkerPoolMetrics interface {
	// TaskSubmitted is called when a task is queued.
	TaskSubmitted(pool string)
	// TaskCompleted is called when a task returned, with the time it spent queued and running.
	TaskCompleted(pool string, queued time.Duration, running time.Duration)
	// QueueSize reports the number of tasks waiting for a worker.
	QueueSize(pool string, size int)
}
