package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/flow-witness/module"
)

type WorkerPoolCollector struct {
	submitted   *prometheus.CounterVec
	queueSize   *prometheus.GaugeVec
	waitTime    *prometheus.HistogramVec
	runningTime *prometheus.HistogramVec
}

var _ module.WorkerPoolMetrics = (*WorkerPoolCollector)(nil)

func NewWorkerPoolCollector(registerer prometheus.Registerer) *WorkerPoolCollector {
	wc := &WorkerPoolCollector{
		submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:      "tasks_submitted_total",
			Namespace: namespaceWitness,
			Subsystem: subsystemWorkerPool,
			Help:      "number of tasks submitted to the worker pool",
		}, []string{LabelPool}),

		queueSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:      "queue_size",
			Namespace: namespaceWitness,
			Subsystem: subsystemWorkerPool,
			Help:      "number of tasks waiting for a worker",
		}, []string{LabelPool}),

		waitTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "task_wait_seconds",
			Namespace: namespaceWitness,
			Subsystem: subsystemWorkerPool,
			Help:      "time a task spent queued before a worker picked it up",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}, []string{LabelPool}),

		runningTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "task_run_seconds",
			Namespace: namespaceWitness,
			Subsystem: subsystemWorkerPool,
			Help:      "time a task spent running on a worker",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}, []string{LabelPool}),
	}

	registerer.MustRegister(wc.submitted, wc.queueSize, wc.waitTime, wc.runningTime)

	return wc
}

func (wc *WorkerPoolCollector) TaskSubmitted(pool string) {
	wc.submitted.WithLabelValues(pool).Inc()
}

func (wc *WorkerPoolCollector) TaskCompleted(pool string, queued time.Duration, running time.Duration) {
	wc.waitTime.WithLabelValues(pool).Observe(queued.Seconds())
	wc.runningTime.WithLabelValues(pool).Observe(running.Seconds())
}

func (wc *WorkerPoolCollector) QueueSize(pool string, size int) {
	wc.queueSize.WithLabelValues(pool).Set(float64(size))
}
