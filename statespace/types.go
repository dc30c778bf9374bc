// Package statespace defines the (position, heading) search state, its dense
// and bit-packed encodings, and the transition/cost function of the maze.
package statespace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tiepath/grid"
)

// Edge costs. A turn is always bundled with the move that follows it, the
// model never turns in place.
const (
	// StepCost is the cost of moving one cell straight ahead.
	StepCost int64 = 1
	// TurnCost is the cost of a 90° turn plus the move.
	TurnCost int64 = 1001
	// ReverseCost is the cost of the start-only edge that reverses out of the
	// start cell (two bundled turns plus the move).
	ReverseCost int64 = 2001
	// MaxEdgeCost bounds every edge cost above.
	MaxEdgeCost = ReverseCost
)

// Packed key layout: 14 bits of x, 14 bits of y, 2 bits of heading.
const (
	packedCoordBits = 14
	packedCoordMask = 1<<packedCoordBits - 1
	// MaxPackedDim is the largest width or height a packed Key can address.
	MaxPackedDim = 1 << packedCoordBits
)

// ErrStateSpaceOverflow indicates the grid is too large for the chosen state
// encoding. It is a configuration error detected at construction time.
var ErrStateSpaceOverflow = errors.New("statespace: grid too large for state encoding")

// ErrNilGrid indicates a nil *grid.Grid was passed to New.
var ErrNilGrid = errors.New("statespace: grid is nil")

// State is a (position, heading) pair, the unit of search.
type State struct {
	Pos    grid.Point
	Facing grid.Heading
}

func (s State) String() string { return fmt.Sprintf("%v%v", s.Pos, s.Facing) }

// Transition is one outgoing edge of a State.
type Transition struct {
	To   State
	Cost int64
}

// Key is the bit-packed identity of a State, used where a compact hashable
// value is preferred over the State struct.
type Key uint32

// Options configures the transition function.
//
// ReverseStart – offer the one-time ReverseCost edge out of the start state
// when the cell behind the start heading is open.
type Options struct {
	ReverseStart bool
}

// Option represents a functional option for configuring a Space.
type Option func(*Options)

// WithReverseStart toggles the start-only reverse edge.
func WithReverseStart(enabled bool) Option {
	return func(o *Options) {
		o.ReverseStart = enabled
	}
}

// DefaultOptions returns the defaults: ReverseStart enabled.
func DefaultOptions() Options {
	return Options{ReverseStart: true}
}
