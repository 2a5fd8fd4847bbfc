// Command epochsim drives a real epoch.Manager with a configurable
// number of simulated, goroutine-backed sources voting across several
// rounds, printing the resulting Action per round. It is useful for
// manually poking at persist-policy thresholds without writing a new
// unit test each time.
package main

import (
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coreflowdata/epochcore/config"
	"github.com/coreflowdata/epochcore/internal/lifecycle"
	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
	"github.com/coreflowdata/epochcore/module/checkpoint"
	"github.com/coreflowdata/epochcore/module/epoch"
	"github.com/coreflowdata/epochcore/module/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	flagSources int
	flagRounds  int
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epochsim",
		Short: "Simulate N sources closing epochs against a real epoch manager",
		RunE:  run,
	}

	config.BindFlags(cmd.Flags())
	cmd.Flags().IntVar(&flagSources, "sources", 10, "number of simulated source goroutines")
	cmd.Flags().IntVar(&flagRounds, "rounds", 5, "number of epoch-close rounds to simulate")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)

	factory, err := checkpoint.NewBadgerFactory(log, checkpoint.BadgerFactoryOptions{
		Dir: cfg.CheckpointDir,
	})
	if err != nil {
		return err
	}
	ready := lifecycle.NewSignal()
	ready.Close()
	<-lifecycle.AllReady(factoryComponent{ready: ready})

	collector := metrics.NewEpochCollector(prometheus.NewRegistry())

	options := cfg.EpochManagerOptions()
	options.Log = log
	options.Metrics = collector

	manager := epoch.New(flagSources, 0, factory, options)

	simulateRounds(log, manager, flagSources, flagRounds)

	return factory.Close()
}

// factoryComponent is a trivial lifecycle.ReadyDoneAware wrapper so the
// checkpoint factory participates in the same AllReady/AllDone idiom
// used for startup/shutdown coordination of sub-components.
type factoryComponent struct {
	ready *lifecycle.Signal
}

func (f factoryComponent) Ready() <-chan struct{} { return f.ready.Channel() }
func (f factoryComponent) Done() <-chan struct{}  { return f.ready.Channel() }

func simulateRounds(log zerolog.Logger, manager *epoch.Manager, numSources, rounds int) {
	ids := make([]string, numSources)
	for i := range ids {
		ids[i] = uuid.NewString()
	}

	for round := 0; round < rounds; round++ {
		lastRound := round == rounds-1

		var (
			wg      sync.WaitGroup
			results = make([]epoch.ClosedEpoch, numSources)
		)
		wg.Add(numSources)
		for i := 0; i < numSources; i++ {
			i := i
			go func() {
				defer wg.Done()
				handle := epochmodel.NewNamedNodeHandle(ids[i])
				state := epochmodel.NotStarted()
				requestCommit := rand.Float64() < 0.3 //nolint:gosec // simulation only
				results[i] = manager.WaitForEpochClose(
					epoch.Vote{Handle: handle, State: state},
					lastRound,
					requestCommit,
				)
			}()
		}
		wg.Wait()

		log.Info().
			Int("round", round).
			Str("action", actionFor(results[0])).
			Bool("should_terminate", results[0].ShouldTerminate).
			Msg("epoch close")

		if results[0].ShouldTerminate {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func actionFor(closed epoch.ClosedEpoch) string {
	switch {
	case closed.CommonInfo == nil:
		return "Nothing"
	case closed.CommonInfo.CheckpointWriter != nil:
		return "CommitAndPersist"
	case closed.CommonInfo.SinkPersistQueue != nil:
		return "CommitAndPersist(queue-only)"
	default:
		return "Commit"
	}
}
