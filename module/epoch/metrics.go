package epoch

import "time"

// Metrics is the narrow interface Manager reports through. It is
// satisfied by *metrics.EpochCollector; tests and callers who don't care
// about metrics use NoopMetrics. Keeping this as a small local interface,
// rather than importing the prometheus-backed type directly, means
// module/epoch never needs to import prometheus itself.
type Metrics interface {
	// ClosedEpoch is called once per epoch close, after the decision has
	// been computed, with the resulting action's name and epoch id.
	ClosedEpoch(action string, epochID uint64)
	// BarrierWait is called once per source per close, with how long
	// that source waited at the barrier.
	BarrierWait(d time.Duration)
}

// NoopMetrics discards everything; it is the default when no Metrics is
// supplied via Options.
type NoopMetrics struct{}

func (NoopMetrics) ClosedEpoch(string, uint64)  {}
func (NoopMetrics) BarrierWait(time.Duration) {}
