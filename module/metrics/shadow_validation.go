package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/flow-witness/model/flow"
	"github.com/onflow/flow-witness/module"
)

type ShadowValidationCollector struct {
	failed        *prometheus.CounterVec
	encodeTime    *prometheus.HistogramVec
	decodeTime    *prometheus.HistogramVec
	witnessSize   *prometheus.HistogramVec
	preValidation *prometheus.HistogramVec
	validation    *prometheus.HistogramVec
}

var _ module.ShadowValidationMetrics = (*ShadowValidationCollector)(nil)

func NewShadowValidationCollector(registerer prometheus.Registerer) *ShadowValidationCollector {
	sc := &ShadowValidationCollector{
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "failed_total",
			Namespace: namespaceWitness,
			Subsystem: subsystemShadowValidation,
			Help:      "number of chunks for which shadow validation failed",
		}, []string{LabelShard}),

		encodeTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "encode_seconds",
			Namespace: namespaceWitness,
			Subsystem: subsystemShadowValidation,
			Help:      "time spent encoding a state witness",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.6, 20),
		}, []string{LabelShard}),

		decodeTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "decode_seconds",
			Namespace: namespaceWitness,
			Subsystem: subsystemShadowValidation,
			Help:      "time spent decoding a state witness",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.6, 20),
		}, []string{LabelShard}),

		witnessSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "witness_size_bytes",
			Namespace: namespaceWitness,
			Subsystem: subsystemShadowValidation,
			Help:      "size of an encoded state witness, before (raw) and after (encoded) compression",
			Buckets:   prometheus.ExponentialBuckets(1000, 2.0, 20),
		}, []string{LabelShard, LabelSize}),

		preValidation: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "pre_validation_seconds",
			Namespace: namespaceWitness,
			Subsystem: subsystemShadowValidation,
			Help:      "time spent pre-validating a state witness",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.6, 20),
		}, []string{LabelShard}),

		validation: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "validation_seconds",
			Namespace: namespaceWitness,
			Subsystem: subsystemShadowValidation,
			Help:      "time spent on the full validation of a state witness",
			Buckets:   prometheus.ExponentialBuckets(0.001, 1.6, 20),
		}, []string{LabelShard}),
	}

	registerer.MustRegister(
		sc.failed,
		sc.encodeTime,
		sc.decodeTime,
		sc.witnessSize,
		sc.preValidation,
		sc.validation,
	)

	return sc
}

func (sc *ShadowValidationCollector) ShadowValidationFailed(shard flow.ShardID) {
	sc.failed.WithLabelValues(shard.String()).Inc()
}

func (sc *ShadowValidationCollector) WitnessEncoded(shard flow.ShardID, duration time.Duration) {
	sc.encodeTime.WithLabelValues(shard.String()).Observe(duration.Seconds())
}

func (sc *ShadowValidationCollector) WitnessDecoded(shard flow.ShardID, duration time.Duration) {
	sc.decodeTime.WithLabelValues(shard.String()).Observe(duration.Seconds())
}

func (sc *ShadowValidationCollector) WitnessSize(shard flow.ShardID, raw int, encoded int) {
	sc.witnessSize.WithLabelValues(shard.String(), SizeRaw).Observe(float64(raw))
	sc.witnessSize.WithLabelValues(shard.String(), SizeEncoded).Observe(float64(encoded))
}

func (sc *ShadowValidationCollector) WitnessPreValidated(shard flow.ShardID, duration time.Duration) {
	sc.preValidation.WithLabelValues(shard.String()).Observe(duration.Seconds())
}

func (sc *ShadowValidationCollector) WitnessValidated(shard flow.ShardID, duration time.Duration) {
	sc.validation.WithLabelValues(shard.String()).Observe(duration.Seconds())
}
