package epoch

import (
	lru "github.com/hashicorp/golang-lru"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
)

// history is a bounded, thread-safe cache of recent ClosedEpoch
// decisions, keyed by epoch id. It is purely additive observability for
// operators and tests — nothing in the decision algorithm reads from it —
// modeled on the lru.Cache usage pattern seen guarding a pending-block
// cache in the corpus (lru.New sized at construction, Add/Get
// thereafter).
type history struct {
	cache *lru.Cache
}

func newHistory(size int) *history {
	if size <= 0 {
		return &history{}
	}
	// lru.New only fails for a non-positive size, already excluded above.
	cache, _ := lru.New(size)
	return &history{cache: cache}
}

func (h *history) record(epochID epochmodel.EpochID, closed ClosedEpoch) {
	if h.cache == nil {
		return
	}
	h.cache.Add(epochID, closed)
}

// Recent returns the cached decision for epochID, if it is still present.
func (h *history) Recent(epochID epochmodel.EpochID) (ClosedEpoch, bool) {
	if h.cache == nil {
		return ClosedEpoch{}, false
	}
	v, ok := h.cache.Get(epochID)
	if !ok {
		return ClosedEpoch{}, false
	}
	return v.(ClosedEpoch), true
}
