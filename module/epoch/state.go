package epoch

import (
	"time"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
)

type stateKind uint8

const (
	stateKindClosing stateKind = iota
	stateKindClosed
)

// closingState accumulates votes for the epoch currently being closed.
type closingState struct {
	epochID         epochmodel.EpochID
	shouldTerminate bool
	shouldCommit    bool
	sourceStates    *epochmodel.SourceStates
	barrier         *barrier
}

func newClosingState(epochID epochmodel.EpochID, numSources int) *closingState {
	return &closingState{
		epochID:         epochID,
		shouldTerminate: true,
		shouldCommit:    false,
		sourceStates:    epochmodel.NewSourceStates(),
		barrier:         newBarrier(numSources),
	}
}

// closedState holds a computed decision while it is being read out by
// every source, one at a time.
type closedState struct {
	terminating            bool
	action                 epochmodel.Action
	epochID                epochmodel.EpochID
	sourceStates            *epochmodel.SourceStates
	instant                 time.Time
	numSourceConfirmations  int
}

// managerState is the outer state: the two-variant Closing/Closed
// machine plus the two scalars that persist across every epoch and drive
// the persist policy. Go has no in-place enum-variant replacement, so
// Phase B reads the Closing payload out, computes, and writes back a
// fresh Closed payload.
type managerState struct {
	kind    stateKind
	closing *closingState
	closed  *closedState

	nextRecordIndexToPersist           uint64
	lastPersistedEpochDecisionInstant time.Time
}

func (s *managerState) epochID() epochmodel.EpochID {
	if s.kind == stateKindClosing {
		return s.closing.epochID
	}
	return s.closed.epochID
}
