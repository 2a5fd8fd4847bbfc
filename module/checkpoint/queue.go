package checkpoint

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/gammazero/workerpool"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	epochmodel "github.com/coreflowdata/epochcore/model/epoch"
)

// asyncQueue is the Queue implementation backed by the factory's badger
// database. Enqueue hands the record off to a bounded worker pool so the
// caller (a sink running on the epoch-close path) never blocks on disk
// I/O; the worker pool drains records onto badger with a small bounded
// retry on transient conflicts.
type asyncQueue struct {
	db  *badger.DB
	log zerolog.Logger
	wp  *workerpool.WorkerPool

	mu       sync.Mutex
	sequence uint64
	errs     *multierror.Error
}

func newAsyncQueue(db *badger.DB, log zerolog.Logger, concurrency int) *asyncQueue {
	return &asyncQueue{
		db:  db,
		log: log.With().Str("component", "checkpoint_queue").Logger(),
		wp:  workerpool.New(concurrency),
	}
}

func (q *asyncQueue) Enqueue(ctx context.Context, rec Record) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	q.mu.Lock()
	q.sequence++
	key := queueKey(rec.EpochID, q.sequence)
	q.mu.Unlock()

	q.wp.Submit(func() {
		backoff := retry.WithMaxRetries(3, retry.NewConstant(10*time.Millisecond))
		err := retry.Do(context.Background(), backoff, func(ctx context.Context) error {
			txErr := q.db.Update(func(txn *badger.Txn) error {
				return txn.Set(key, rec.Payload)
			})
			if errors.Is(txErr, badger.ErrConflict) {
				return retry.RetryableError(txErr)
			}
			return txErr
		})
		if err != nil {
			q.log.Error().Err(err).Uint64("epoch_id", uint64(rec.EpochID)).Msg("failed to flush queued record")
			q.mu.Lock()
			q.errs = multierror.Append(q.errs, err)
			q.mu.Unlock()
		}
	})

	return nil
}

// drain waits for every submitted record to finish flushing and returns
// the aggregate of any failures observed along the way.
func (q *asyncQueue) drain() error {
	q.wp.StopWait()
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.errs.ErrorOrNil()
}

func queueKey(epochID epochmodel.EpochID, sequence uint64) []byte {
	return []byte(fmt.Sprintf("queue/%020d/%020d", uint64(epochID), sequence))
}
