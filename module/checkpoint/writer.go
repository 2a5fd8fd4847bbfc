package checkpoint

import (
	"context"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
)

// badgerWriter persists a single epoch's SourceStates snapshot, cbor
// encoded, under a per-epoch key in the shared badger database.
type badgerWriter struct {
	db      *badger.DB
	epochID epochmodel.EpochID

	closeOnce sync.Once
}

func newBadgerWriter(db *badger.DB, epochID epochmodel.EpochID) *badgerWriter {
	return &badgerWriter{db: db, epochID: epochID}
}

func (w *badgerWriter) Write(ctx context.Context, states *epochmodel.SourceStates) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	payload := make(map[string]sourceStateWire, states.Len())
	states.Range(func(handle epochmodel.NodeHandle, state epochmodel.SourceState) {
		payload[handle.String()] = sourceStateWire{
			Kind:  uint8(state.Kind),
			Token: state.Token,
		}
	})

	encoded, err := cbor.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "could not encode source states")
	}

	key := checkpointKey(w.epochID)
	err = w.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, encoded)
	})
	if err != nil {
		return errors.Wrapf(err, "could not write checkpoint for epoch %d", w.epochID)
	}
	return nil
}

func (w *badgerWriter) Close() error {
	// The writer does not own the db; nothing to release beyond marking
	// itself closed, kept for symmetry with the Writer contract and to
	// make double-Close safe.
	w.closeOnce.Do(func() {})
	return nil
}

// sourceStateWire is the cbor wire shape for a SourceState; it exists
// because the token needs to survive an unexported-field-free round trip.
type sourceStateWire struct {
	Kind  uint8  `cbor:"kind"`
	Token []byte `cbor:"token,omitempty"`
}

func checkpointKey(epochID epochmodel.EpochID) []byte {
	return []byte(fmt.Sprintf("checkpoint/%020d", uint64(epochID)))
}
