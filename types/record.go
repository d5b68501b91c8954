package types

// Unset marks an integer field that was never assigned.
const Unset = -1

/*
Record holds the request statistics of ONE object.

A Record is owned by the Store that created it. The Store mutates it in place:
- Touch overwrites the size
- RecordOutcome bumps the hit or miss counter

Callers outside the Store only ever see a Snapshot, never the Record itself.
A Record can still be used on its own (for example by a simulator that keeps its
own objects), which is why the mutators are exported.
*/
type Record struct {
	size        float64
	hits        int64
	misses      int64
	lastRequest int64
	dataType    int
}

// NewRecord creates a Record with zeroed counters.
// lastRequest is the sequence number of the request that created it.
func NewRecord(size float64, dataType int, lastRequest int64) *Record {
	return &Record{
		size:        size,
		lastRequest: lastRequest,
		dataType:    dataType,
	}
}

// RecordOutcome counts one request as a hit or a miss. Nothing else changes.
func (r *Record) RecordOutcome(hit bool) {
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

// TotalRequests is always hits + misses.
func (r *Record) TotalRequests() int64 {
	return r.hits + r.misses
}

func (r *Record) Size() float64      { return r.size }
func (r *Record) Hits() int64        { return r.hits }
func (r *Record) Misses() int64      { return r.misses }
func (r *Record) LastRequest() int64 { return r.lastRequest }
func (r *Record) DataType() int      { return r.dataType }

// SetSize overwrites the last-known size.
func (r *Record) SetSize(size float64) {
	r.size = size
}

// SetLastRequest is only meant for standalone Records.
// The Store keeps the creating request and never calls this.
func (r *Record) SetLastRequest(seq int64) {
	r.lastRequest = seq
}

/*
Snapshot returns a copy of the Record's public view:

	(size, total requests, last request, data type)

The returned value shares nothing with the Record, so mutating it (or keeping it
around) has no effect on the Store.
*/
func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		Size:          r.size,
		TotalRequests: r.TotalRequests(),
		LastRequest:   r.lastRequest,
		DataType:      r.dataType,
	}
}
