package epoch

import (
	"time"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
	"github.com/coreflowdata/epochcore/module/checkpoint"
)

// Vote is what a source contributes to WaitForEpochClose: its identity
// and the snapshot state it can resume from (or not).
type Vote struct {
	Handle epochmodel.NodeHandle
	State  epochmodel.SourceState
}

// EpochCommonInfo is present on a ClosedEpoch iff the epoch is being
// committed. It carries everything sinks need to act on the commit.
type EpochCommonInfo struct {
	// ID is the epoch id to tag committed records with.
	ID epochmodel.EpochID
	// SourceStates is the shared, immutable snapshot of every source's
	// vote for this close, used for downstream recovery metadata.
	SourceStates *epochmodel.SourceStates
	// CheckpointWriter is present iff the epoch is being persisted,
	// checkpoints are enabled, and every source voted restartable.
	CheckpointWriter checkpoint.Writer
	// SinkPersistQueue is present iff the epoch is being persisted,
	// independent of whether checkpoints are enabled.
	SinkPersistQueue checkpoint.Queue
}

// ClosedEpoch is returned to every source from WaitForEpochClose. Every
// source observing the same close receives component-wise identical
// values.
type ClosedEpoch struct {
	ShouldTerminate bool
	CommonInfo      *EpochCommonInfo
	DecisionInstant time.Time
}
