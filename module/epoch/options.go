package epoch

import (
	"time"

	"github.com/rs/zerolog"
)

// Options bundles the three persist-policy knobs together with the
// construction-time hooks a Manager needs (logger, metrics, record
// counter). The config package populates the first three fields from
// flags/env/file; the rest default sensibly for callers who construct a
// Manager directly.
type Options struct {
	// MaxNumRecordsBeforePersist: persist once at least this many
	// records have been ingested since the last persist. Default
	// 100_000, matching max_num_records_before_persist.
	MaxNumRecordsBeforePersist uint64
	// MaxIntervalBeforePersist: persist once at least this much wall
	// time has elapsed since the last persist. Default 60s, matching
	// max_interval_before_persist_in_seconds.
	MaxIntervalBeforePersist time.Duration
	// EnableCheckpoints gates whether a CheckpointWriter is ever handed
	// out, matching enable_app_checkpoints. Default false.
	EnableCheckpoints bool

	// RecordCounter is the persist-policy's record-count hook (see
	// record_counter.go). Defaults to ZeroRecordCounter.
	RecordCounter RecordCounter
	// Metrics receives epoch-close/barrier-wait observations. Defaults
	// to NoopMetrics{}.
	Metrics Metrics
	// Log is the base logger the manager derives its component logger
	// from. Defaults to a no-op logger.
	Log zerolog.Logger
	// HistorySize bounds the recent-decision LRU (see history.go).
	// Defaults to 64, which is also used when it is left 0; a negative
	// value disables the cache entirely.
	HistorySize int
}

// DefaultOptions returns the spec's documented defaults, with no-op
// ambient hooks.
func DefaultOptions() Options {
	return Options{
		MaxNumRecordsBeforePersist: 100_000,
		MaxIntervalBeforePersist:   60 * time.Second,
		EnableCheckpoints:          false,
		RecordCounter:              ZeroRecordCounter,
		Metrics:                    NoopMetrics{},
		Log:                        zerolog.Nop(),
		HistorySize:                64,
	}
}

// withDefaults fills in any zero-valued hook fields left unset by a
// caller who only cared about the three persist-policy knobs.
func (o Options) withDefaults() Options {
	if o.RecordCounter == nil {
		o.RecordCounter = ZeroRecordCounter
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	if o.HistorySize == 0 {
		o.HistorySize = 64
	}
	return o
}
