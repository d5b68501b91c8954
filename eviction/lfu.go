// This file implements LFU eviction.

package eviction

// lfuNode represents one key tracked by LFU.
type lfuNode struct {
	key  int64
	freq int // requests since admission
}

type lfu struct {
	// nodes lets us quickly find the node for a key
	nodes map[int64]*lfuNode

	// freqMap groups keys by how many times they were requested
	freqMap map[int]map[int64]*lfuNode

	// minFreq is the smallest frequency currently present.
	// This avoids scanning every bucket on eviction.
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		nodes:   make(map[int64]*lfuNode),
		freqMap: make(map[int]map[int64]*lfuNode),
	}
}

// OnGet moves the key one frequency bucket up.
func (l *lfu) OnGet(k int64) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}

	old := n.freq
	n.freq++

	l.unlink(old, k)
	if len(l.freqMap[old]) == 0 && l.minFreq == old {
		l.minFreq = n.freq
	}
	l.link(n)
}

// OnPut tracks a new key with frequency 1.
func (l *lfu) OnPut(k int64) {
	if _, ok := l.nodes[k]; ok {
		return
	}

	n := &lfuNode{key: k, freq: 1}
	l.nodes[k] = n
	l.link(n)

	// A key with freq=1 exists now, so nothing can be lower
	l.minFreq = 1
}

// Evict removes ANY key with the lowest frequency.
// Ties are broken arbitrarily (map iteration order).
func (l *lfu) Evict() (int64, bool) {
	for k := range l.freqMap[l.minFreq] {
		l.unlink(l.minFreq, k)
		delete(l.nodes, k)
		l.fixMin()
		return k, true
	}
	return 0, false
}

/*
EvictExcept removes a lowest-frequency key other than skip.
When skip is alone in the minFreq bucket, the next buckets are searched.
*/
func (l *lfu) EvictExcept(skip int64) (int64, bool) {
	var (
		victim int64
		best   int
		found  bool
	)
	for f, bucket := range l.freqMap {
		if found && f >= best {
			continue
		}
		for k := range bucket {
			if k != skip {
				victim, best, found = k, f, true
				break
			}
		}
	}
	if !found {
		return 0, false
	}

	l.unlink(best, victim)
	delete(l.nodes, victim)
	l.fixMin()
	return victim, true
}

// Remove drops a key that left the cache without being evicted.
func (l *lfu) Remove(k int64) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}
	l.unlink(n.freq, k)
	delete(l.nodes, k)
	l.fixMin()
}

func (l *lfu) Len() int { return len(l.nodes) }

func (l *lfu) link(n *lfuNode) {
	if l.freqMap[n.freq] == nil {
		l.freqMap[n.freq] = make(map[int64]*lfuNode)
	}
	l.freqMap[n.freq][n.key] = n
}

// unlink removes k from the bucket and drops the bucket once it is empty.
func (l *lfu) unlink(freq int, k int64) {
	delete(l.freqMap[freq], k)
	if len(l.freqMap[freq]) == 0 {
		delete(l.freqMap, freq)
	}
}

// fixMin rescans the buckets after minFreq's bucket went away.
func (l *lfu) fixMin() {
	if _, ok := l.freqMap[l.minFreq]; ok {
		return
	}
	l.minFreq = 0
	for f := range l.freqMap {
		if l.minFreq == 0 || f < l.minFreq {
			l.minFreq = f
		}
	}
}
