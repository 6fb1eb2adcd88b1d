package search

import "sort"

// entry is one queued node. A node can be queued several times; only the
// entry matching the node's current Priority is live.
type entry struct {
	idx      int
	priority float64
}

// queue is a slice kept sorted ascending by priority. Inserting at the upper
// bound keeps equal priorities in insertion order, so the first inserted pops
// first.
type queue struct {
	items []entry
}

// Len returns the number of queued entries, stale ones included.
func (q *queue) Len() int { return len(q.items) }

// push inserts idx with priority p after every entry of priority ≤ p.
// Complexity: O(log n) search + O(n) shift.
func (q *queue) push(idx int, p float64) {
	at := sort.Search(len(q.items), func(k int) bool { return q.items[k].priority > p })
	q.items = append(q.items, entry{})
	copy(q.items[at+1:], q.items[at:])
	q.items[at] = entry{idx: idx, priority: p}
}

// pop removes and returns the front entry. ok is false when empty.
func (q *queue) pop() (e entry, ok bool) {
	if len(q.items) == 0 {
		return entry{}, false
	}
	e = q.items[0]
	q.items = q.items[1:]
	return e, true
}
