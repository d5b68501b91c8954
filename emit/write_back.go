package emit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/krisalay/objstats/types"
)

// This file implements the "write-back" policy.

// ErrDropped is returned by WriteBack.Close when rows were lost to a full buffer.
var ErrDropped = errors.New("rows dropped")

// writeReq represents one pending row that still has to reach the sink.
type writeReq struct {
	ctx context.Context
	row types.Row
}

/*
WriteBack hands rows to a background worker through a buffered channel.
*/
type WriteBack struct {
	sink types.Sink

	// ch holds pending rows.
	//
	// Buffering lets the simulator loop run ahead of the sink
	// during bursts.
	ch chan writeReq

	// wg is used to wait for the worker to finish during shutdown.
	wg sync.WaitGroup

	// dropped counts rows lost because the buffer was full.
	dropped atomic.Int64

	// err is the first sink error, written only by the worker.
	err error

	closeOnce sync.Once
}

// NewWriteBack creates a write-back policy and starts its worker.
func NewWriteBack(sink types.Sink, buffer int) *WriteBack {
	if buffer <= 0 {
		buffer = 1
	}
	w := &WriteBack{
		sink: sink,
		ch:   make(chan writeReq, buffer),
	}

	w.wg.Add(1)
	go w.worker()

	return w
}

// OnSnapshot queues the row. If the queue is full, the row is DROPPED and counted:
// blocking here would stall the replay, which is what write-back exists to avoid.
func (w *WriteBack) OnSnapshot(ctx context.Context, row types.Row) {
	select {
	case w.ch <- writeReq{ctx, row}:
	default:
		w.dropped.Add(1)
	}
}

// Dropped returns how many rows were lost to a full buffer.
func (w *WriteBack) Dropped() int64 {
	return w.dropped.Load()
}

/*
worker runs in the background and drains the queue into the sink.
It keeps going after an error so that one bad write does not lose the rest.
*/
func (w *WriteBack) worker() {
	defer w.wg.Done()

	for req := range w.ch {
		if err := w.sink.Write(req.ctx, req.row); err != nil && w.err == nil {
			w.err = err
		}
	}
}

/*
Close shuts down the write-back policy gracefully.
------------------
1. Close the channel (no more rows accepted)
2. Wait for the worker to finish the queued rows
3. Flush the sink

The output is incomplete when rows were dropped, so Close reports that as
ErrDropped alongside any sink error.
OnSnapshot must not be called after Close.
*/
func (w *WriteBack) Close() error {
	w.closeOnce.Do(func() {
		close(w.ch)
		w.wg.Wait()
		if err := w.sink.Flush(); err != nil && w.err == nil {
			w.err = err
		}
	})

	if n := w.Dropped(); n > 0 {
		return errors.Join(w.err, fmt.Errorf("write-back: %w: %d", ErrDropped, n))
	}
	return w.err
}
