package epoch

// Action is the commit/persist verdict computed once per epoch close and
// shared by every source that observes that close.
type Action uint8

const (
	// ActionNothing means the epoch is not committed.
	ActionNothing Action = iota
	// ActionCommit means the epoch is committed but not durably
	// persisted.
	ActionCommit
	// ActionCommitAndPersist means the epoch is committed and a durable
	// checkpoint/queue flush is triggered.
	ActionCommitAndPersist
)

// ShouldCommit reports whether sinks should treat the epoch as committed.
func (a Action) ShouldCommit() bool {
	return a == ActionCommit || a == ActionCommitAndPersist
}

// ShouldPersist reports whether a durable checkpoint/queue flush should
// accompany the commit.
func (a Action) ShouldPersist() bool {
	return a == ActionCommitAndPersist
}

func (a Action) String() string {
	switch a {
	case ActionNothing:
		return "Nothing"
	case ActionCommit:
		return "Commit"
	case ActionCommitAndPersist:
		return "CommitAndPersist"
	default:
		return "Unknown"
	}
}

// EpochID is a monotonically non-decreasing counter identifying an epoch.
// It advances by exactly 1 when, and only when, the closing epoch was
// committed; otherwise the same id is reused for the next close.
type EpochID uint64
