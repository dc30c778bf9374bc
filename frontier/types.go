// Package frontier provides the cost-ordered queues that drive a Dijkstra
// expansion: a monotone bucket queue for small bounded edge costs and a
// binary heap for the general case.
//
// Both implementations pop entries in nondecreasing cost order and, among
// equal costs, in insertion order, so a search produces the same sequence of
// settlements with either one.
package frontier

import "errors"

// NoHeading marks an entry that was not reached through any edge (the
// search origin).
const NoHeading int8 = -1

// Sentinel errors. Both signal misuse and are raised via panic by the
// bucket queue.
var (
	// ErrNonMonotonic indicates a push below the cost of the last pop.
	ErrNonMonotonic = errors.New("frontier: push below last popped cost")
	// ErrEdgeTooLarge indicates a push beyond the bucket ring's span.
	ErrEdgeTooLarge = errors.New("frontier: push exceeds maximum edge cost span")
	// ErrBadSpan indicates a non-positive maximum edge cost.
	ErrBadSpan = errors.New("frontier: maximum edge cost must be positive")
)

// Entry is a pending (state, incoming heading) pair awaiting settlement.
type Entry struct {
	Cost  int64 // path cost from the origin
	State int   // dense state index
	From  int8  // heading of the predecessor state, or NoHeading
}

// Frontier is a min-priority queue of entries keyed by Cost.
type Frontier interface {
	// Push schedules e.
	Push(e Entry)
	// Pop removes and returns the lowest-cost entry; ok is false when empty.
	Pop() (e Entry, ok bool)
	// PeekCost reports the lowest pending cost without removing it.
	PeekCost() (cost int64, ok bool)
	// Len returns the number of pending entries.
	Len() int
}

// Kind selects a Frontier implementation.
type Kind int

const (
	// KindBucket is the monotone bucket queue (Dial's algorithm).
	KindBucket Kind = iota
	// KindHeap is the binary heap.
	KindHeap
)

func (k Kind) String() string {
	switch k {
	case KindBucket:
		return "bucket"
	case KindHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// New returns a Frontier of the given kind. maxEdge bounds the cost of any
// single edge and is only used by KindBucket.
func New(kind Kind, maxEdge int64) Frontier {
	if kind == KindHeap {
		return NewHeap()
	}
	return NewBucket(maxEdge)
}
