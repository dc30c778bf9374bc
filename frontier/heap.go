package frontier

import "container/heap"

// Heap is a binary min-heap frontier with lazy decrease-key: stale entries
// stay in the heap and are discarded by the caller when popped.
//
// Complexity: Push/Pop O(log N), PeekCost O(1), Space O(N).
type Heap struct {
	pq  entryPQ
	seq uint64
}

// NewHeap returns an empty heap frontier.
func NewHeap() *Heap {
	h := &Heap{pq: make(entryPQ, 0, 64)}
	heap.Init(&h.pq)
	return h
}

// Push schedules e.
func (h *Heap) Push(e Entry) {
	heap.Push(&h.pq, heapItem{Entry: e, seq: h.seq})
	h.seq++
}

// Pop removes and returns the lowest-cost entry, FIFO among equal costs.
func (h *Heap) Pop() (Entry, bool) {
	if h.pq.Len() == 0 {
		return Entry{}, false
	}
	return heap.Pop(&h.pq).(heapItem).Entry, true
}

// PeekCost reports the lowest pending cost.
func (h *Heap) PeekCost() (int64, bool) {
	if h.pq.Len() == 0 {
		return 0, false
	}
	return h.pq[0].Cost, true
}

// Len returns the number of pending entries.
func (h *Heap) Len() int { return h.pq.Len() }

// heapItem carries an insertion sequence number so equal costs pop in
// insertion order.
type heapItem struct {
	Entry
	seq uint64
}

// entryPQ is a min-heap of heapItem ordered by (Cost, seq).
type entryPQ []heapItem

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost first, then earlier insertion.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type heapItem.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(heapItem)) }

// Pop removes and returns the last element of the underlying slice.
// Called by heap.Pop after it has moved the minimum there.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
