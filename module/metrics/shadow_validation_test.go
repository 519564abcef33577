package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-witness/module/metrics"
)

func TestShadowValidationCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewShadowValidationCollector(registry)

	collector.ShadowValidationFailed(1)
	collector.ShadowValidationFailed(1)
	collector.ShadowValidationFailed(3)
	collector.WitnessEncoded(1, 10*time.Millisecond)
	collector.WitnessSize(1, 2000, 500)

	count, err := testutil.GatherAndCount(registry, "witness_shadow_validation_failed_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count) // one series per shard

	count, err = testutil.GatherAndCount(registry, "witness_shadow_validation_witness_size_bytes")
	require.NoError(t, err)
	assert.Equal(t, 2, count) // raw and encoded

	count, err = testutil.GatherAndCount(registry, "witness_shadow_validation_decode_seconds")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
