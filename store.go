package objstats

import (
	"github.com/krisalay/objstats/api"
	"github.com/krisalay/objstats/engine"
	"github.com/krisalay/objstats/types"
)

var _ api.Stats = (*Store)(nil)

/*
Store is the main statistics collection.
It owns every Record it ever created, keyed by object id, plus a single-slot
cursor pointing at the most recently touched object.

The cursor is what makes the simulator's hot path cheap:

	store.Touch(key, size, dataType, seq) // select or create, move cursor
	store.RecordOutcome(hit)               // no key needed
	store.Snapshot()                       // no key needed

A Store is a plain value with no locks and no global state. Use one Store per
goroutine, or wrap it in a SyncStore.
*/
type Store struct {
	// records maps object keys to the Records this store owns.
	records map[int64]*types.Record

	// cursor is the key passed to the last successful Touch, or types.Unset.
	cursor int64

	// engine holds the rules: validation, strictness, metrics, logging.
	engine *engine.StatsEngine
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return &Store{
		records: make(map[int64]*types.Record, s.sizeHint),
		cursor:  types.Unset,
		engine:  engine.NewStatsEngine(s.validator, s.strict, s.metrics, s.logger),
	}
}

/*
Touch selects the object for the current request and makes it current.

BEHAVIOR:
---------
1. Key not seen before:
  - Create a Record with zero counters and lastRequest = seq
  - Insert it

2. Key already present:
  - Overwrite ONLY its size
  - lastRequest and dataType keep the values from the first touch

The second rule is on purpose: the stored lastRequest is the first request that
saw this object in the store's lifetime, and dataType is the first category
reported for it.

A rejected call (strict validation) changes nothing, not even the cursor.
The returned Snapshot is a copy; there is no way to reach the Record through it.
*/
func (s *Store) Touch(key int64, size float64, dataType int, seq int64) (types.Snapshot, error) {
	if err := s.engine.CheckTouch(key, size, dataType); err != nil {
		return types.EmptySnapshot, err
	}

	s.cursor = key

	rec, ok := s.records[key]
	if !ok {
		rec = types.NewRecord(size, dataType, seq)
		s.records[key] = rec
		s.engine.OnInsert()
		return rec.Snapshot(), nil
	}

	rec.SetSize(size)
	s.engine.OnUpdate()
	return rec.Snapshot(), nil
}

/*
RecordOutcome counts a hit or miss on the current object.

Without a current object this is a no-op. It never creates a Record.
In strict mode the same situation returns ErrNotFound instead.
*/
func (s *Store) RecordOutcome(hit bool) error {
	rec, ok := s.current()
	if !ok {
		return s.engine.OnMissingCursor("record_outcome")
	}

	rec.RecordOutcome(hit)
	s.engine.OnOutcome(hit)
	return nil
}

// Snapshot returns a copy of the current object's stats, or types.EmptySnapshot.
func (s *Store) Snapshot() types.Snapshot {
	rec, ok := s.current()
	if !ok {
		return types.EmptySnapshot
	}
	return rec.Snapshot()
}

// Lookup returns the stats of any key without moving the cursor.
func (s *Store) Lookup(key int64) (types.Snapshot, error) {
	rec, ok := s.records[key]
	if !ok {
		return types.EmptySnapshot, ErrNotFound
	}
	return rec.Snapshot(), nil
}

// Cursor returns the current key, or types.Unset.
func (s *Store) Cursor() int64 {
	return s.cursor
}

// Len returns how many objects the store has seen.
func (s *Store) Len() int {
	return len(s.records)
}

/*
Range calls fn with a snapshot of every object, in no particular order,
until fn returns false. This is how callers build their own aggregates.

fn must not call Touch on the same store.
*/
func (s *Store) Range(fn func(key int64, snap types.Snapshot) bool) {
	for key, rec := range s.records {
		if !fn(key, rec.Snapshot()) {
			return
		}
	}
}

// current resolves the cursor. A cursor that points nowhere counts as unset.
// Key -1 is a valid object key, so the map decides, not the sentinel.
func (s *Store) current() (*types.Record, bool) {
	rec, ok := s.records[s.cursor]
	return rec, ok
}
