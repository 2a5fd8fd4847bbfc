package epoch

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBarrier_ReleasesAllAfterNArrivals(t *testing.T) {
	const n = 8
	b := newBarrier(n)

	var arrived int32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			b.wait()
			atomic.AddInt32(&arrived, 1)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("barrier did not release all waiters")
	}
	require.EqualValues(t, n, arrived)
}

func TestBarrier_BlocksUntilLastArrival(t *testing.T) {
	const n = 3
	b := newBarrier(n)

	released := make(chan struct{})
	go func() {
		b.wait()
		close(released)
	}()
	go func() {
		b.wait()
	}()

	select {
	case <-released:
		t.Fatal("barrier released before all parties arrived")
	case <-time.After(50 * time.Millisecond):
	}

	b.wait()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("barrier did not release after last arrival")
	}
}
