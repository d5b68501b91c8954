package simulator

import (
	"math"

	"github.com/krisalay/objstats/eviction"
)

/*
Cache is the size-bounded cache being simulated. It decides hit or miss;
the Store only records what it decided.

Capacity is in the same unit as the trace sizes. An object larger than the whole
capacity is never admitted, so every request for it is a miss. The same goes for
sizes that cannot be accounted: negative, NaN or infinite.
*/
type Cache struct {
	capacity float64
	used     float64
	sizes    map[int64]float64
	policy   eviction.Policy
	evicted  int64
}

func NewCache(capacity float64, policy eviction.PolicyType) *Cache {
	return &Cache{
		capacity: capacity,
		sizes:    make(map[int64]float64),
		policy:   eviction.NewEvictionPolicy(policy),
	}
}

/*
Request looks up key and returns true on a hit.

On a miss the object is admitted, evicting until it fits.
On a hit with a changed size the cached size is updated; if it no longer fits,
other objects are evicted (never the requested one). The requested object keeps
its place in the eviction order.
*/
func (c *Cache) Request(key int64, size float64) bool {
	if cur, ok := c.sizes[key]; ok {
		c.policy.OnGet(key)
		if size != cur {
			c.resize(key, cur, size)
		}
		return true
	}

	if !c.admittable(size) {
		return false
	}

	c.makeRoom(size, c.policy.Evict)
	c.sizes[key] = size
	c.used += size
	c.policy.OnPut(key)
	return false
}

// Contains reports whether key is cached, without touching eviction state.
func (c *Cache) Contains(key int64) bool {
	_, ok := c.sizes[key]
	return ok
}

// Used returns the occupied capacity.
func (c *Cache) Used() float64 { return c.used }

// Len returns the number of cached objects.
func (c *Cache) Len() int { return len(c.sizes) }

// Evicted returns how many objects were evicted so far.
func (c *Cache) Evicted() int64 { return c.evicted }

func (c *Cache) admittable(size float64) bool {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return false
	}
	return size >= 0 && size <= c.capacity
}

func (c *Cache) resize(key int64, cur, size float64) {
	if !c.admittable(size) {
		c.policy.Remove(key)
		delete(c.sizes, key)
		c.used -= cur
		return
	}

	c.used -= cur
	c.makeRoom(size, func() (int64, bool) { return c.policy.EvictExcept(key) })
	c.sizes[key] = size
	c.used += size
}

func (c *Cache) makeRoom(size float64, evict func() (int64, bool)) {
	for c.used+size > c.capacity {
		victim, ok := evict()
		if !ok {
			return
		}
		c.used -= c.sizes[victim]
		delete(c.sizes, victim)
		c.evicted++
	}
}
