package epoch

// SourceStateKind tags the variant held by a SourceState.
type SourceStateKind uint8

const (
	// SourceStateKindNotStarted means the source has not yet ingested
	// anything for the run.
	SourceStateKindNotStarted SourceStateKind = iota
	// SourceStateKindRestartable means the source can resume from Token.
	SourceStateKindRestartable
	// SourceStateKindNonRestartable means the source cannot be safely
	// resumed after a restart.
	SourceStateKindNonRestartable
)

func (k SourceStateKind) String() string {
	switch k {
	case SourceStateKindNotStarted:
		return "NotStarted"
	case SourceStateKindRestartable:
		return "Restartable"
	case SourceStateKindNonRestartable:
		return "NonRestartable"
	default:
		return "Unknown"
	}
}

// SourceState is the per-source snapshot token contributed when voting on
// an epoch close. Token is only meaningful when Kind is
// SourceStateKindRestartable; it is an opaque blob the source itself knows
// how to interpret on resume.
type SourceState struct {
	Kind  SourceStateKind
	Token []byte
}

// NotStarted builds a SourceState for a source that has not ingested yet.
func NotStarted() SourceState {
	return SourceState{Kind: SourceStateKindNotStarted}
}

// Restartable builds a SourceState carrying a resumable token.
func Restartable(token []byte) SourceState {
	return SourceState{Kind: SourceStateKindRestartable, Token: token}
}

// NonRestartable builds a SourceState for a source that cannot resume.
func NonRestartable() SourceState {
	return SourceState{Kind: SourceStateKindNonRestartable}
}

// IsRestartable reports whether this state qualifies for checkpoint
// issuance: everything except NonRestartable does.
func (s SourceState) IsRestartable() bool {
	return s.Kind != SourceStateKindNonRestartable
}
