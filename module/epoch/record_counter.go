package epoch

import "go.uber.org/atomic"

// RecordCounter is the hook the persist policy reads the current ingested
// record count from. It is a plain function type so the backing source
// is left to the integrator: pass ZeroRecordCounter to leave the
// record-count trigger permanently inert, or wire up an
// AtomicRecordCounter (or any other func() uint64) fed by the source
// connectors.
type RecordCounter func() uint64

// ZeroRecordCounter always reports zero records ingested, which leaves
// the record-count trigger of the persist policy permanently inert and
// only the time-based trigger effective — the historical default.
func ZeroRecordCounter() uint64 {
	return 0
}

// AtomicRecordCounter is a RecordCounter backing store for integrators
// that do want the record-count trigger to fire: source connectors call
// Add as they ingest, and pass Count as the RecordCounter hook.
type AtomicRecordCounter struct {
	count atomic.Uint64
}

// NewAtomicRecordCounter returns a counter starting at zero.
func NewAtomicRecordCounter() *AtomicRecordCounter {
	return &AtomicRecordCounter{}
}

// Add increments the counter by delta. Safe for concurrent use by
// multiple source connectors.
func (c *AtomicRecordCounter) Add(delta uint64) {
	c.count.Add(delta)
}

// Count implements RecordCounter.
func (c *AtomicRecordCounter) Count() uint64 {
	return c.count.Load()
}
