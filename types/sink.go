package types

import "context"

// Sink is the contract between the emitter and whatever consumes snapshot rows.
type Sink interface {

	/*
		Write is called once per emitted row.
		1. Simulator replays a request
		2. Store produces a snapshot
		3. Emit policy hands the row to the Sink (now or later)
		4. Sink forwards it to a file, a pipe, an aggregator, ...
	*/
	Write(ctx context.Context, row Row) error

	// Flush pushes any buffered rows out. Called on shutdown.
	Flush() error
}
