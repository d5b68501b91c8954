// This file implements LRU eviction.

package eviction

// lruNode represents ONE key inside the LRU structure. We use a doubly-linked list to track usage order.
type lruNode struct {
	key int64

	// prev points towards the head (more recently used)
	prev *lruNode

	// next points towards the tail (less recently used)
	next *lruNode
}

// lru is the concrete implementation of the LRU eviction policy.
type lru struct {
	// nodes maps keys to their list nodes so we can find and move them in O(1).
	nodes map[int64]*lruNode

	// head points to the MOST recently used key
	head *lruNode

	// tail points to the LEAST recently used key
	tail *lruNode
}

func newLRU() *lru {
	return &lru{nodes: make(map[int64]*lruNode)}
}

// OnGet marks the key as most recently used.
func (l *lru) OnGet(k int64) {
	if n, ok := l.nodes[k]; ok {
		l.moveToFront(n)
	}
}

// OnPut adds a new key at the front. Known keys are left to OnGet.
func (l *lru) OnPut(k int64) {
	if _, ok := l.nodes[k]; ok {
		return
	}
	n := &lruNode{key: k}
	l.nodes[k] = n
	l.addFront(n)
}

// Evict removes the LEAST recently used key, which is always the tail.
func (l *lru) Evict() (int64, bool) {
	if l.tail == nil {
		return 0, false
	}
	k := l.tail.key
	l.remove(l.tail)
	delete(l.nodes, k)
	return k, true
}

// EvictExcept removes the least recently used key other than skip.
func (l *lru) EvictExcept(skip int64) (int64, bool) {
	n := l.tail
	if n != nil && n.key == skip {
		n = n.prev
	}
	if n == nil {
		return 0, false
	}
	l.remove(n)
	delete(l.nodes, n.key)
	return n.key, true
}

// Remove drops a key that left the cache without being evicted.
func (l *lru) Remove(k int64) {
	if n, ok := l.nodes[k]; ok {
		l.remove(n)
		delete(l.nodes, k)
	}
}

func (l *lru) Len() int { return len(l.nodes) }

func (l *lru) addFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n

	// If the list was empty, head and tail are the same
	if l.tail == nil {
		l.tail = n
	}
}

// remove unlinks a node and fixes head and tail if needed.
func (l *lru) remove(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

func (l *lru) moveToFront(n *lruNode) {
	l.remove(n)
	l.addFront(n)
}
