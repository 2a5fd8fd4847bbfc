// Package metrics exposes prometheus collectors for the epoch
// coordination core, following flow-go's convention of threading a
// prometheus.Registerer into module constructors rather than relying on
// the global default registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "epoch_core"

// EpochCollector records epoch-close outcomes and timing for the
// EpochManager. All methods are safe for concurrent use, matching the
// concurrency model of the manager they instrument.
type EpochCollector struct {
	closes          *prometheus.CounterVec
	currentEpochID  prometheus.Gauge
	barrierWaitTime prometheus.Histogram
}

// NewEpochCollector registers and returns a new EpochCollector against
// reg. Passing a prometheus.NewRegistry() (rather than the global
// registry) keeps tests hermetic.
func NewEpochCollector(reg prometheus.Registerer) *EpochCollector {
	c := &EpochCollector{
		closes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "closes_total",
			Help:      "Number of epoch closes, labeled by the resulting action.",
		}, []string{"action"}),
		currentEpochID: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_epoch_id",
			Help:      "The id of the most recently closed epoch.",
		}),
		barrierWaitTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "barrier_wait_seconds",
			Help:      "Time a source spent waiting at the epoch-close barrier.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.closes, c.currentEpochID, c.barrierWaitTime)

	return c
}

// ClosedEpoch records the outcome of one epoch close.
func (c *EpochCollector) ClosedEpoch(action string, epochID uint64) {
	c.closes.WithLabelValues(action).Inc()
	c.currentEpochID.Set(float64(epochID))
}

// BarrierWait records how long a single source waited at the barrier.
func (c *EpochCollector) BarrierWait(d time.Duration) {
	c.barrierWaitTime.Observe(d.Seconds())
}
