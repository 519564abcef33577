package metrics

import (
	"time"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module"
)

type NoopCollector struct{}

var _ module.ShadowValidationMetrics = (*NoopCollector)(nil)
var _ module.CacheMetrics = (*NoopCollector)(nil)
var _ module.WorkerPoolMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) ShadowValidationFailed(flow.ShardID)                      {}
func (nc *NoopCollector) WitnessEncoded(flow.ShardID, time.Duration)               {}
func (nc *NoopCollector) WitnessDecoded(flow.ShardID, time.Duration)               {}
func (nc *NoopCollector) WitnessSize(flow.ShardID, int, int)                       {}
func (nc *NoopCollector) WitnessPreValidated(flow.ShardID, time.Duration)          {}
func (nc *NoopCollector) WitnessValidated(flow.ShardID, time.Duration)             {}
func (nc *NoopCollector) CacheEntries(resource string, entries uint)               {}
func (nc *NoopCollector) CacheHit(resource string)                                 {}
func (nc *NoopCollector) CacheNotFound(resource string)                            {}
func (nc *NoopCollector) CacheMiss(resource string)                                {}
func (nc *NoopCollector) TaskSubmitted(pool string)                                {}
func (nc *NoopCollector) TaskCompleted(pool string, queued, running time.Duration) {}
func (nc *NoopCollector) QueueSize(pool string, size int)                          {}
