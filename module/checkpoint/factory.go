package checkpoint

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
)

// BadgerFactory is the Factory implementation backed by an embedded
// badger database. One BadgerFactory is shared by every CheckpointWriter
// and by the one Queue for the lifetime of the pipeline.
type BadgerFactory struct {
	db    *badger.DB
	queue *asyncQueue
	log   zerolog.Logger
}

// BadgerFactoryOptions configures BadgerFactory construction.
type BadgerFactoryOptions struct {
	// Dir is the directory badger opens its database in.
	Dir string
	// QueueConcurrency bounds how many records the async queue flushes
	// to disk concurrently. Defaults to 4 when <= 0.
	QueueConcurrency int
	// InMemory opens badger with no on-disk footprint, for tests.
	InMemory bool
}

// NewBadgerFactory opens (creating if necessary) a badger database under
// opts.Dir and returns a ready-to-use Factory.
func NewBadgerFactory(log zerolog.Logger, opts BadgerFactoryOptions) (*BadgerFactory, error) {
	badgerOpts := badger.DefaultOptions(opts.Dir).
		WithLogger(badgerLogger{log: log}).
		WithInMemory(opts.InMemory)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, errors.Wrap(err, "could not open checkpoint database")
	}

	concurrency := opts.QueueConcurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	return &BadgerFactory{
		db:    db,
		queue: newAsyncQueue(db, log, concurrency),
		log:   log.With().Str("component", "checkpoint_factory").Logger(),
	}, nil
}

// Queue returns the shared persist queue.
func (f *BadgerFactory) Queue() Queue {
	return f.queue
}

// NewWriter constructs a Writer scoped to epochID.
func (f *BadgerFactory) NewWriter(epochID epochmodel.EpochID) (Writer, error) {
	return newBadgerWriter(f.db, epochID), nil
}

// Close drains the queue and closes the database, aggregating any errors
// from both steps.
func (f *BadgerFactory) Close() error {
	var result *multierror.Error
	if err := f.queue.drain(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "could not drain persist queue"))
	}
	if err := f.db.Close(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "could not close checkpoint database"))
	}
	return result.ErrorOrNil()
}
