package emit

import (
	"context"

	"github.com/krisalay/objstats/types"
)

/*
This file defines what an "emit policy" is.

Every replayed request produces one Row. Different consumers have different needs:
- A test or a small trace wants every row, in order, right away (write-through)
- A long replay wants the simulator loop never to wait on I/O (write-back)

Instead of hard-coding one behavior, we define an interface so we can plug in different strategies.
*/

/*
Policy is the contract that all emit policies must follow.
The simulator does not care which policy is used. It simply calls these methods.
*/
type Policy interface {

	// OnSnapshot is called once per replayed request.
	OnSnapshot(ctx context.Context, row types.Row)

	// Close is called when the replay is done. It flushes the sink and
	// returns the first write error seen, if any.
	Close() error
}

// Mode selects a Policy by name, as written in the config file.
type Mode string

const (
	Through Mode = "through"
	Back    Mode = "back"
)

// New builds the Policy for mode. Anything but Back is write-through.
func New(mode Mode, sink types.Sink, buffer int) Policy {
	if mode == Back {
		return NewWriteBack(sink, buffer)
	}
	return NewWriteThrough(sink)
}

// Discard drops every row. Used when no output is configured.
type Discard struct{}

func (Discard) OnSnapshot(context.Context, types.Row) {}
func (Discard) Close() error                          { return nil }
