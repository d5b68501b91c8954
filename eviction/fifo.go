// This file implements FIFO eviction.

package eviction

type fifo struct {
	// queue keeps keys in the order they were admitted.
	// The front of the queue (index 0) is the oldest key.
	queue []int64

	// set keeps track of which keys are currently in the queue.
	set map[int64]struct{}
}

func newFIFO() *fifo {
	return &fifo{
		queue: make([]int64, 0),
		set:   make(map[int64]struct{}),
	}
}

// OnGet is ignored: FIFO only cares about admission order.
func (f *fifo) OnGet(int64) {}

// OnPut appends a new key to the end of the queue. Known keys keep their place.
func (f *fifo) OnPut(k int64) {
	if _, ok := f.set[k]; ok {
		return
	}
	f.queue = append(f.queue, k)
	f.set[k] = struct{}{}
}

// Evict pops the oldest key.
func (f *fifo) Evict() (int64, bool) {
	if len(f.queue) == 0 {
		return 0, false
	}
	k := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.set, k)
	return k, true
}

// EvictExcept pops the oldest key that is not skip.
func (f *fifo) EvictExcept(skip int64) (int64, bool) {
	for i, k := range f.queue {
		if k == skip {
			continue
		}
		f.queue = append(f.queue[:i], f.queue[i+1:]...)
		delete(f.set, k)
		return k, true
	}
	return 0, false
}

/*
Remove drops a key that left the cache without being evicted.

Steps:
------
1. Check if the key is tracked
2. Remove it from the set
3. Remove it from the queue, preserving order
*/
func (f *fifo) Remove(k int64) {
	if _, ok := f.set[k]; !ok {
		return
	}
	delete(f.set, k)

	for i, v := range f.queue {
		if v == k {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			break
		}
	}
}

func (f *fifo) Len() int { return len(f.set) }
