// Package checkpoint supplies one concrete CheckpointFactory/Writer/Queue
// implementation for the epoch coordination core. The core itself only
// ever talks to the interfaces declared here, reached through a factory
// handle.
package checkpoint

import (
	"context"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
)

// Record is a unit of durable work placed on the sink persist queue: a
// sink hands the core a slice of bytes it wants flushed asynchronously,
// tagged with the epoch that produced it.
type Record struct {
	EpochID epochmodel.EpochID
	Payload []byte
}

// Writer is scoped to a single epoch and durably persists that epoch's
// recovery snapshot. It is handed out iff the epoch is being persisted,
// checkpoints are enabled, and every source voted restartable.
type Writer interface {
	// Write durably stores the given source-state snapshot under this
	// writer's epoch.
	Write(ctx context.Context, states *epochmodel.SourceStates) error
	// Close releases any resources the writer holds. Safe to call more
	// than once.
	Close() error
}

// Queue is the shared, thread-safe sink persist queue. It is handed out
// (as EpochCommonInfo.SinkPersistQueue) iff the epoch's action persists.
type Queue interface {
	// Enqueue schedules rec for asynchronous durable persistence. It
	// returns once rec has been accepted, not once it has been flushed.
	Enqueue(ctx context.Context, rec Record) error
}

// Factory constructs epoch-scoped Writers and exposes the single shared
// Queue. The core clones/shares this handle; it never owns the storage
// backend's lifecycle.
type Factory interface {
	// Queue returns the shared persist queue.
	Queue() Queue
	// NewWriter constructs a Writer scoped to epochID.
	NewWriter(epochID epochmodel.EpochID) (Writer, error)
	// Close shuts down the backend, draining the queue first.
	Close() error
}
