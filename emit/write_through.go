package emit

import (
	"context"

	"github.com/krisalay/objstats/types"
)

/*
This file implements the "write-through" policy.

Whenever the simulator emits a row, it is immediately handed to the sink.

So the flow is: Snapshot → Sink write (synchronous)
*/

// WriteThrough forwards every row to the sink on the caller's goroutine.
type WriteThrough struct {
	sink types.Sink

	// err is the first write error. Later rows are still attempted.
	err error
}

// NewWriteThrough creates a new write-through policy.
func NewWriteThrough(sink types.Sink) *WriteThrough {
	return &WriteThrough{sink: sink}
}

/*
OnSnapshot writes the row now.
  - If the sink is slow, the replay becomes slow
  - Rows arrive in request order
*/
func (w *WriteThrough) OnSnapshot(ctx context.Context, row types.Row) {
	if err := w.sink.Write(ctx, row); err != nil && w.err == nil {
		w.err = err
	}
}

// Close flushes the sink.
func (w *WriteThrough) Close() error {
	if err := w.sink.Flush(); err != nil && w.err == nil {
		w.err = err
	}
	return w.err
}
