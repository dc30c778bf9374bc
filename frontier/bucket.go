package frontier

import "fmt"

// Bucket is a monotone bucket queue (Dial's algorithm). When every edge cost
// is at most maxEdge, all pending costs lie in [base, base+maxEdge], so a ring
// of maxEdge+1 FIFO buckets indexed by cost mod (maxEdge+1) is enough.
//
// Two lower bounds are tracked: last, the cost of the most recent pop, which
// every push must respect, and base, the start of the window holding the
// pending entries. base >= last; a push between them lowers base as long as
// the highest pending cost still fits the window.
//
// Complexity:
//
//   - Push: O(1) amortized.
//   - Pop / PeekCost: O(1) amortized; a single call may skip up to maxEdge
//     empty buckets.
//   - Space: O(maxEdge + pending entries).
type Bucket struct {
	buckets [][]Entry // ring of FIFO buckets
	heads   []int     // read offset into each bucket
	span    int64     // len(buckets) == maxEdge+1
	last    int64     // cost of the last pop; floor for every push
	base    int64     // lowest cost the window can hold
	top     int64     // highest pending cost, valid while n > 0
	n       int       // pending entries
}

// NewBucket returns an empty bucket queue for edge costs in [0, maxEdge].
// Panics with ErrBadSpan if maxEdge <= 0.
func NewBucket(maxEdge int64) *Bucket {
	if maxEdge <= 0 {
		panic(ErrBadSpan.Error())
	}
	span := maxEdge + 1

	return &Bucket{
		buckets: make([][]Entry, span),
		heads:   make([]int, span),
		span:    span,
	}
}

// Push schedules e. Panics with ErrNonMonotonic if e.Cost is below the last
// popped cost and with ErrEdgeTooLarge if the pending costs would no longer
// fit in maxEdge+1 consecutive values.
func (b *Bucket) Push(e Entry) {
	if e.Cost < b.last {
		panic(fmt.Sprintf("%s: cost %d < %d", ErrNonMonotonic, e.Cost, b.last))
	}
	switch {
	case b.n == 0:
		b.base, b.top = e.Cost, e.Cost
	case e.Cost < b.base:
		if b.top-e.Cost >= b.span {
			panic(fmt.Sprintf("%s: cost %d, highest pending %d, span %d", ErrEdgeTooLarge, e.Cost, b.top, b.span))
		}
		b.base = e.Cost
	case e.Cost-b.base >= b.span:
		panic(fmt.Sprintf("%s: cost %d, base %d, span %d", ErrEdgeTooLarge, e.Cost, b.base, b.span))
	case e.Cost > b.top:
		b.top = e.Cost
	}
	i := e.Cost % b.span
	b.buckets[i] = append(b.buckets[i], e)
	b.n++
}

// Pop removes and returns the lowest-cost entry, FIFO among equal costs.
func (b *Bucket) Pop() (Entry, bool) {
	cost, ok := b.seek()
	if !ok {
		return Entry{}, false
	}
	b.last, b.base = cost, cost
	i := cost % b.span
	e := b.buckets[i][b.heads[i]]
	b.heads[i]++
	if b.heads[i] == len(b.buckets[i]) {
		// Drained: rewind so the backing array is reused.
		b.buckets[i] = b.buckets[i][:0]
		b.heads[i] = 0
	}
	b.n--

	return e, true
}

// PeekCost reports the lowest pending cost.
func (b *Bucket) PeekCost() (int64, bool) { return b.seek() }

// Len returns the number of pending entries.
func (b *Bucket) Len() int { return b.n }

// seek finds the cost of the first non-empty bucket at or after base.
func (b *Bucket) seek() (int64, bool) {
	if b.n == 0 {
		return 0, false
	}
	for c := b.base; ; c++ {
		i := c % b.span
		if b.heads[i] < len(b.buckets[i]) {
			return c, true
		}
	}
}
