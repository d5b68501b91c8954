package objstats

import (
	"sync"

	"github.com/krisalay/objstats/api"
	"github.com/krisalay/objstats/types"
)

var _ api.Stats = (*SyncStore)(nil)

/*
SyncStore wraps a Store with one mutex so several goroutines can drive it.

Each method is atomic on its own, but the cursor is still shared: two
goroutines interleaving Touch and RecordOutcome will count outcomes against
each other's objects. Use Observe to run the whole request under one lock.
*/
type SyncStore struct {
	mu    sync.Mutex
	store *Store
}

// NewSync creates a SyncStore around a fresh Store.
func NewSync(opts ...Option) *SyncStore {
	return &SyncStore{store: New(opts...)}
}

func (s *SyncStore) Touch(key int64, size float64, dataType int, seq int64) (types.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Touch(key, size, dataType, seq)
}

func (s *SyncStore) RecordOutcome(hit bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.RecordOutcome(hit)
}

func (s *SyncStore) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

/*
Observe runs touch → record outcome → snapshot for one request without letting
another goroutine move the cursor in between.

If Touch is rejected, no outcome is recorded and the error is returned.
*/
func (s *SyncStore) Observe(key int64, size float64, dataType int, seq int64, hit bool) (types.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Touch(key, size, dataType, seq); err != nil {
		return types.EmptySnapshot, err
	}
	if err := s.store.RecordOutcome(hit); err != nil {
		return types.EmptySnapshot, err
	}
	return s.store.Snapshot(), nil
}

func (s *SyncStore) Lookup(key int64) (types.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Lookup(key)
}

func (s *SyncStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

func (s *SyncStore) Cursor() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Cursor()
}

// Range is Store.Range under the lock. fn must not call back into s.
func (s *SyncStore) Range(fn func(key int64, snap types.Snapshot) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Range(fn)
}
