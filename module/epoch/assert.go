package epoch

import "fmt"

// Programmer errors (num_sources == 0, more than N callers per epoch) are
// asserted, never recovered —
// the pipeline cannot make progress without this core, so there is no
// graceful degradation to fall back to. The panic/message-format idiom
// below is adapted from mirbft's state-machine assertion helpers
// (assertTrue/assertEqual), which exist for exactly the same reason: a
// violated state-machine invariant is a bug, not a runtime condition to
// recover from. A caller that never arrives is not detected here: the
// barrier has no timeout, so the callers that did arrive block
// indefinitely.
func assertTrue(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("epoch manager invariant violated: "+format, args...))
	}
}
