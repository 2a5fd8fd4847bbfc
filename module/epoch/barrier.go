package epoch

import "sync"

// barrier is a single-use N-party rendezvous: every one of n callers must
// call wait before any of them returns. A fresh barrier is created per
// epoch (see newClosingState) and discarded once that epoch closes; Go's
// garbage collector reclaims it once the last reference — held by the
// goroutines that raced for this epoch, plus the manager's own Closing
// state until it is overwritten — drops.
//
// wait has no timeout: if fewer than n callers ever arrive, the ones that
// did block indefinitely and the epoch never closes.
//
// No third-party library in the reference corpus supplies this
// primitive (Rust's std::sync::Barrier has no equivalent import here),
// so it is built directly on sync.Mutex, the same low-level primitive
// the rest of the corpus reaches for when nothing higher-level fits.
type barrier struct {
	mu        sync.Mutex
	n         int
	count     int
	turnstile chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{n: n, turnstile: make(chan struct{})}
}

// wait blocks until n callers have called wait on this barrier, then
// releases all of them. Exactly one caller's call to wait is the one that
// observes count == n and performs the release; which one is unspecified.
func (b *barrier) wait() {
	b.mu.Lock()
	b.count++
	last := b.count == b.n
	b.mu.Unlock()

	if last {
		close(b.turnstile)
		return
	}
	<-b.turnstile
}
