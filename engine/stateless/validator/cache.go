package validator

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/module/metrics"
)

// DefaultTransitionCacheSize is the number of chunk transitions kept by default.
const DefaultTransitionCacheSize = 1000

// TransitionCache remembers the state root each validated chunk transitions to,
// so that a chunk seen again is not re-executed. It is safe for concurrent use.
type TransitionCache struct {
	metrics module.CacheMetrics
	cache   *lru.Cache[flow.Identifier, flow.StateCommitment]
}

func NewTransitionCache(collector module.CacheMetrics, size int) (*TransitionCache, error) {
	cache, err := lru.New[flow.Identifier, flow.StateCommitment](size)
	if err != nil {
		return nil, fmt.Errorf("could not create transition cache: %w", err)
	}
	collector.CacheEntries(metrics.ResourceTransition, 0)
	return &TransitionCache{
		metrics: collector,
		cache:   cache,
	}, nil
}

// Get returns the post state root of the chunk, if cached.
func (c *TransitionCache) Get(chunkID flow.Identifier) (flow.StateCommitment, bool) {
	root, ok := c.cache.Get(chunkID)
	if !ok {
		c.metrics.CacheNotFound(metrics.ResourceTransition)
		return flow.DummyStateCommitment, false
	}
	c.metrics.CacheHit(metrics.ResourceTransition)
	return root, true
}

// Add caches the post state root of the chunk.
func (c *TransitionCache) Add(chunkID flow.Identifier, root flow.StateCommitment) {
	c.cache.Add(chunkID, root)
	c.metrics.CacheEntries(metrics.ResourceTransition, uint(c.cache.Len()))
}

// Len returns the number of cached transitions.
func (c *TransitionCache) Len() int {
	return c.cache.Len()
}
