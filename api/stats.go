package api

import "github.com/krisalay/objstats/types"

/*
Stats defines the PUBLIC API a simulator drives.
This is a contract that guarantees certain behaviors, without exposing how
Records are kept. Both Store and SyncStore satisfy it.
*/
type Stats interface {

	/*
		Touch selects (creating if absent) the object for the current request
		and makes it the current object.

		BEHAVIOR:
		---------
		- New key: Record with zero counters, lastRequest = seq
		- Known key: only the size is overwritten

		Returns a copy of the object's stats after the touch.
	*/
	Touch(key int64, size float64, dataType int, seq int64) (types.Snapshot, error)

	/*
		RecordOutcome counts a hit or a miss on the current object.

		If nothing was touched yet this does nothing (or returns ErrNotFound
		in strict mode). It never creates a Record.
	*/
	RecordOutcome(hit bool) error

	/*
		Snapshot returns (size, total requests, last request, data type) of the
		current object.

		RETURN VALUES:
		--------------
		(-1, -1, -1, -1) : no current object
	*/
	Snapshot() types.Snapshot
}
