package epoch_test

import (
	"strconv"
	"sync"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
	"github.com/coreflowdata/epochcore/module/epoch"
)

// runEpochManager launches one goroutine per participant, all racing to
// close the same epoch, and returns every participant's result. The
// multi-source tests pass those results to requireIdenticalClosedEpochs
// to assert that every participant observed the same decision.
func runEpochManager(
	manager *epoch.Manager,
	numSources int,
	terminationFor func(index int) bool,
	commitFor func(index int) bool,
	stateFor func(index int) (epochmodel.NodeHandle, epochmodel.SourceState),
) []epoch.ClosedEpoch {
	results := make([]epoch.ClosedEpoch, numSources)

	var wg sync.WaitGroup
	wg.Add(numSources)
	for i := 0; i < numSources; i++ {
		i := i
		go func() {
			defer wg.Done()
			handle, state := stateFor(i)
			results[i] = manager.WaitForEpochClose(
				epoch.Vote{Handle: handle, State: state},
				terminationFor(i),
				commitFor(i),
			)
		}()
	}
	wg.Wait()

	return results
}

func namedSourceState(index int) (epochmodel.NodeHandle, epochmodel.SourceState) {
	return epochmodel.NewNamedNodeHandle("source-" + strconv.Itoa(index)), epochmodel.NotStarted()
}
