package types

// Snapshot is a read-only copy of a Record, taken at one point in time.
type Snapshot struct {
	Size          float64
	TotalRequests int64
	LastRequest   int64
	DataType      int
}

// EmptySnapshot is returned when there is no current object.
var EmptySnapshot = Snapshot{
	Size:          -1.0,
	TotalRequests: Unset,
	LastRequest:   Unset,
	DataType:      Unset,
}

// IsEmpty reports whether s is the "no current object" sentinel.
func (s Snapshot) IsEmpty() bool {
	return s == EmptySnapshot
}

// Values returns the snapshot as the classic 4-tuple.
func (s Snapshot) Values() (float64, int64, int64, int) {
	return s.Size, s.TotalRequests, s.LastRequest, s.DataType
}

/*
Row is what the simulator emits for every replayed request.

It pairs the Store's snapshot with the request that produced it, so a
downstream aggregation layer does not need to look anything up again.
*/
type Row struct {
	Seq      int64
	Key      int64
	Hit      bool
	Snapshot Snapshot
}
