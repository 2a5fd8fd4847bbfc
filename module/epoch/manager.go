// Package epoch implements the epoch coordination core: synchronizing N
// concurrent source threads around epoch-close boundaries and computing
// the commit/persist decision for each boundary.
package epoch

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
	"github.com/coreflowdata/epochcore/module/checkpoint"
)

// Manager owns the epoch state machine and is shared by every source
// participant for the lifetime of the pipeline run. There is no shutdown
// operation: termination is negotiated in-band through should_terminate.
type Manager struct {
	numSources        int
	checkpointFactory checkpoint.Factory
	options           Options
	log               zerolog.Logger
	history           *history

	mu    sync.Mutex
	state managerState
}

// New constructs a Manager for numSources participants starting at
// epochID, backed by checkpointFactory for durable persistence.
//
// numSources == 0 is a programmer error and panics immediately rather
// than returning an error, matching the fail-fast posture the rest of
// this core takes toward invariant violations.
func New(numSources int, epochID epochmodel.EpochID, checkpointFactory checkpoint.Factory, options Options) *Manager {
	assertTrue(numSources > 0, "num_sources must be > 0, got %d", numSources)
	assertTrue(checkpointFactory != nil, "checkpointFactory must not be nil")

	options = options.withDefaults()

	m := &Manager{
		numSources:        numSources,
		checkpointFactory: checkpointFactory,
		options:           options,
		log:               options.Log.With().Str("component", "epoch_manager").Logger(),
		history:           newHistory(options.HistorySize),
	}
	m.state = managerState{
		kind:                               stateKindClosing,
		closing:                            newClosingState(epochID, numSources),
		lastPersistedEpochDecisionInstant:  time.Now(),
	}
	return m
}

// EpochID returns the epoch id currently held in state, whichever
// variant. Non-blocking.
func (m *Manager) EpochID() epochmodel.EpochID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.epochID()
}

// RecentDecision returns the cached ClosedEpoch for epochID, if the
// history cache still holds it. Purely additive observability.
func (m *Manager) RecentDecision(epochID epochmodel.EpochID) (ClosedEpoch, bool) {
	return m.history.Recent(epochID)
}

// WaitForEpochClose is the single synchronizing operation: every
// registered source must call it once per epoch attempt. It blocks until
// all numSources sources have called it for the same epoch, then returns
// an identical view (component-wise) to all callers.
//
// This call is infallible from the caller's point of view: it either
// returns a ClosedEpoch or panics on a programmer-error invariant
// violation. There is no partial success.
func (m *Manager) WaitForEpochClose(vote Vote, requestTermination, requestCommit bool) ClosedEpoch {
	b := m.enterClosingPhase(vote, requestTermination, requestCommit)

	waitStart := time.Now()
	b.wait()
	m.options.Metrics.BarrierWait(time.Since(waitStart))

	m.mu.Lock()
	defer m.mu.Unlock()

	m.computeDecisionLocked()
	return m.readoutLocked()
}

// enterClosingPhase is Phase A: fold this source's vote into the current
// Closing state and return its barrier. A caller that arrives while a
// previous epoch's Closed readout is still in progress releases the lock
// and retries after a short sleep — it arrived "early" for the next
// close.
func (m *Manager) enterClosingPhase(vote Vote, requestTermination, requestCommit bool) *barrier {
	for {
		m.mu.Lock()
		if m.state.kind == stateKindClosing {
			cs := m.state.closing
			cs.shouldTerminate = cs.shouldTerminate && requestTermination
			cs.shouldCommit = cs.shouldCommit || requestCommit
			cs.sourceStates.Insert(vote.Handle, vote.State)
			b := cs.barrier
			m.mu.Unlock()
			return b
		}
		m.mu.Unlock()
		time.Sleep(time.Millisecond)
	}
}

// computeDecisionLocked is Phase B. It runs under m.mu, once per epoch:
// whichever goroutine re-acquires the lock first after the barrier and
// still finds the state Closing performs the transition; every other
// goroutine finds the state already Closed and is a no-op here.
func (m *Manager) computeDecisionLocked() {
	if m.state.kind != stateKindClosing {
		return
	}

	cs := m.state.closing
	instant := time.Now()

	action := epochmodel.ActionNothing
	if cs.shouldCommit {
		action = m.decidePersistLocked(cs, instant)
	}

	m.state.kind = stateKindClosed
	m.state.closed = &closedState{
		terminating:            cs.shouldTerminate,
		action:                 action,
		epochID:                cs.epochID,
		sourceStates:           cs.sourceStates,
		instant:                instant,
		numSourceConfirmations: 0,
	}
	m.state.closing = nil
}

// decidePersistLocked applies the persist policy: persist if either the
// record-count threshold or the time-interval threshold has been
// crossed since the last persist.
func (m *Manager) decidePersistLocked(cs *closingState, instant time.Time) epochmodel.Action {
	recordsSinceLastPersist := saturatingSub(m.options.RecordCounter(), m.state.nextRecordIndexToPersist)
	elapsed := saturatingElapsed(instant, m.state.lastPersistedEpochDecisionInstant)

	shouldPersist := recordsSinceLastPersist >= m.options.MaxNumRecordsBeforePersist ||
		elapsed >= m.options.MaxIntervalBeforePersist

	if !shouldPersist {
		return epochmodel.ActionCommit
	}

	m.state.nextRecordIndexToPersist = m.options.RecordCounter()
	m.state.lastPersistedEpochDecisionInstant = instant
	m.log.Info().
		Uint64("epoch_id", uint64(cs.epochID)).
		Msg("persisting epoch")
	return epochmodel.ActionCommitAndPersist
}

// readoutLocked is Phase C, run by every caller including the one that
// just performed Phase B. It composes this caller's ClosedEpoch and, if
// it is the Nth (last) confirmation, rolls the state machine forward to
// the next epoch's Closing state.
func (m *Manager) readoutLocked() ClosedEpoch {
	cs := m.state.closed
	assertTrue(cs != nil, "readout invoked while state is Closing")

	var commonInfo *EpochCommonInfo
	if cs.action.ShouldCommit() {
		commonInfo = m.composeCommonInfoLocked(cs)
	}

	result := ClosedEpoch{
		ShouldTerminate: cs.terminating,
		CommonInfo:      commonInfo,
		DecisionInstant: cs.instant,
	}

	m.history.record(cs.epochID, result)

	cs.numSourceConfirmations++
	assertTrue(cs.numSourceConfirmations <= m.numSources,
		"more than %d confirmations observed for epoch %d", m.numSources, cs.epochID)

	if cs.numSourceConfirmations == m.numSources {
		// Every source reads out the same closed epoch, so the close-count
		// metric is only incremented once per close, here, rather than once
		// per readoutLocked call.
		m.options.Metrics.ClosedEpoch(cs.action.String(), uint64(cs.epochID))

		nextEpochID := cs.epochID
		if cs.action.ShouldCommit() {
			nextEpochID++
		}
		m.state.kind = stateKindClosing
		m.state.closing = newClosingState(nextEpochID, m.numSources)
		m.state.closed = nil
	}

	return result
}

// composeCommonInfoLocked builds the EpochCommonInfo for a committing
// close. checkpoint_writer is present iff the action persists,
// checkpoints are enabled, and every source voted restartable.
// sink_persist_queue is present iff the action persists, independent of
// whether checkpoints are enabled.
func (m *Manager) composeCommonInfoLocked(cs *closedState) *EpochCommonInfo {
	info := &EpochCommonInfo{
		ID:           cs.epochID,
		SourceStates: cs.sourceStates,
	}

	if !cs.action.ShouldPersist() {
		return info
	}

	info.SinkPersistQueue = m.checkpointFactory.Queue()

	if m.options.EnableCheckpoints && cs.sourceStates.IsRestartable() {
		writer, err := m.checkpointFactory.NewWriter(cs.epochID)
		if err != nil {
			// Writer construction is fallible here, unlike most of this
			// core's invariants; log and withhold the writer rather than
			// panic, since a missing checkpoint writer for one epoch is
			// recoverable by the next persisting close.
			m.log.Error().Err(err).Uint64("epoch_id", uint64(cs.epochID)).
				Msg("could not construct checkpoint writer")
		} else {
			info.CheckpointWriter = writer
		}
	}

	return info
}
