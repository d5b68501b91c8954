package eviction

/*
This file defines how the simulated cache decides what to drop when it runs out of space.
*/

/*
Policy is the interface that all eviction strategies must follow.

This is a set of rules that any eviction algorithm (LRU, LFU, FIFO, etc.) must obey
so the simulator can interact with it in a uniform way.

The simulator does NOT care how eviction works internally.
It only calls these methods.
*/
type Policy interface {

	// OnGet is called whenever a cached object is requested again (a hit).
	//
	// Some eviction strategies care about reads.
	// For example:
	// - LRU needs to know what was accessed recently
	// - LFU counts accesses
	//
	// FIFO ignores this.
	OnGet(int64)

	// OnPut is called whenever an object is admitted into the cache.
	OnPut(int64)

	// Remove is called when an object leaves the cache for a reason
	// other than eviction, so the policy can drop its bookkeeping.
	Remove(int64)

	// Evict is called when the cache is FULL and needs space.
	//
	// It returns the key that should be evicted, and false when
	// nothing is tracked.
	Evict() (int64, bool)

	// EvictExcept is Evict for a cache that must keep skip, usually the
	// object it is growing. skip keeps its place and its counters.
	EvictExcept(skip int64) (int64, bool)

	// Len returns how many keys the policy is tracking.
	Len() int
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// LRU (Least Recently Used): Evicts the object that has NOT been requested for the longest time.
	LRU PolicyType = "LRU"

	// LFU (Least Frequently Used): Evicts the object with the fewest requests since admission.
	LFU PolicyType = "LFU"

	// FIFO (First In First Out): Evicts the oldest admitted object, regardless of access.
	FIFO PolicyType = "FIFO"
)

// Valid reports whether t names a known policy.
func (t PolicyType) Valid() bool {
	switch t {
	case LRU, LFU, FIFO:
		return true
	}
	return false
}

// NewEvictionPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
// Unknown types panic: config validation rejects them first.
func NewEvictionPolicy(t PolicyType) Policy {
	switch t {
	case LRU:
		return newLRU()
	case LFU:
		return newLFU()
	case FIFO:
		return newFIFO()
	default:
		panic("unknown eviction policy: " + string(t))
	}
}
