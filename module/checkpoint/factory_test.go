package checkpoint_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
	"github.com/coreflowdata/epochcore/module/checkpoint"
)

func newTestFactory(t *testing.T) *checkpoint.BadgerFactory {
	t.Helper()
	factory, err := checkpoint.NewBadgerFactory(zerolog.Nop(), checkpoint.BadgerFactoryOptions{
		InMemory: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, factory.Close())
	})
	return factory
}

func TestBadgerFactory_WriterPersistsSourceStates(t *testing.T) {
	factory := newTestFactory(t)

	states := epochmodel.NewSourceStates()
	states.Insert(epochmodel.NewNamedNodeHandle("source-0"), epochmodel.Restartable([]byte("token-0")))
	states.Insert(epochmodel.NewNamedNodeHandle("source-1"), epochmodel.NotStarted())

	writer, err := factory.NewWriter(epochmodel.EpochID(7))
	require.NoError(t, err)
	defer writer.Close()

	err = writer.Write(context.Background(), states)
	require.NoError(t, err)
}

func TestBadgerFactory_QueueEnqueueSucceeds(t *testing.T) {
	factory := newTestFactory(t)

	err := factory.Queue().Enqueue(context.Background(), checkpoint.Record{
		EpochID: epochmodel.EpochID(1),
		Payload: []byte("hello"),
	})
	require.NoError(t, err)
}

func TestBadgerFactory_QueueRejectsCancelledContext(t *testing.T) {
	factory := newTestFactory(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := factory.Queue().Enqueue(ctx, checkpoint.Record{EpochID: 1, Payload: []byte("x")})
	require.Error(t, err)
}
