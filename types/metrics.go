package types

// This file defines how the store reports what it is doing.

/*
Metrics is an interface that defines what the store wants to measure.
Each method represents an event in a Record's lifecycle. The store calls these
methods whenever something happens.

The store never keeps totals itself: whoever implements Metrics owns them.
*/
type Metrics interface {

	// Insert is called when Touch creates a new Record.
	Insert()

	// Update is called when Touch selects an existing Record and overwrites its size.
	Update()

	// Hit is called when a hit is recorded on the current Record.
	Hit()

	// Miss is called when a miss is recorded on the current Record.
	Miss()

	// Reject is called when strict mode refuses a call.
	Reject()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

Most simulator runs don't care about live counters, and we still want the
store to work without if metrics != nil checks on the hot path.
*/
type NoopMetrics struct{}

func (NoopMetrics) Insert() {}
func (NoopMetrics) Update() {}
func (NoopMetrics) Hit()    {}
func (NoopMetrics) Miss()   {}
func (NoopMetrics) Reject() {}
