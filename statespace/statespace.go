package statespace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tiepath/grid"
)

// Space binds a grid to its state encoding and transition function.
// It is immutable and cheap to share between searches over the same grid.
type Space struct {
	g       *grid.Grid
	options Options
	start   State
	n       int
}

// New validates that every state of g fits the dense int32 encoding and
// returns the Space. Returns ErrNilGrid for a nil grid and
// ErrStateSpaceOverflow when width*height*4 exceeds math.MaxInt32.
func New(g *grid.Grid, opts ...Option) (*Space, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, err := DenseCapacity(g.Width(), g.Height())
	if err != nil {
		return nil, err
	}
	pos, facing := g.Start()

	return &Space{
		g:       g,
		options: cfg,
		start:   State{Pos: pos, Facing: facing},
		n:       n,
	}, nil
}

// DenseCapacity returns the number of dense state indices a width x height
// grid needs, or ErrStateSpaceOverflow when it exceeds math.MaxInt32.
func DenseCapacity(width, height int) (int, error) {
	cells := int64(width) * int64(height)
	if cells > math.MaxInt32/grid.NumHeadings {
		return 0, fmt.Errorf("%w: %dx%d needs %d states", ErrStateSpaceOverflow, width, height, cells*grid.NumHeadings)
	}
	return int(cells) * grid.NumHeadings, nil
}

// Grid returns the underlying grid.
func (s *Space) Grid() *grid.Grid { return s.g }

// Start returns the start state.
func (s *Space) Start() State { return s.start }

// Options returns the transition options in effect.
func (s *Space) Options() Options { return s.options }

// Len returns the number of distinct states, width*height*4.
func (s *Space) Len() int { return s.n }

// Encode interns st into a dense index in [0, Len()): the row-major cell
// index times four plus the heading. st must lie within the grid.
// Complexity: O(1).
func (s *Space) Encode(st State) int {
	return s.g.Index(st.Pos)*grid.NumHeadings + int(st.Facing)
}

// Decode is the inverse of Encode.
// Complexity: O(1).
func (s *Space) Decode(idx int) State {
	return State{
		Pos:    s.g.Coordinate(idx / grid.NumHeadings),
		Facing: grid.Heading(idx % grid.NumHeadings),
	}
}

// IsGoal reports whether st stands on the goal cell, in any heading.
func (s *Space) IsGoal(st State) bool { return s.g.IsGoal(st.Pos) }

// Successors appends the transitions out of st to dst and returns it:
// straight ahead at StepCost, left and right at TurnCost, and from the start
// state only, the reverse edge at ReverseCost. Transitions into walls or out
// of the grid are omitted.
func (s *Space) Successors(st State, dst []Transition) []Transition {
	moves := [3]Transition{
		{To: State{Facing: st.Facing}, Cost: StepCost},
		{To: State{Facing: st.Facing.Left()}, Cost: TurnCost},
		{To: State{Facing: st.Facing.Right()}, Cost: TurnCost},
	}
	for _, m := range moves {
		m.To.Pos = st.Pos.Step(m.To.Facing)
		if s.g.At(m.To.Pos) == grid.Wall {
			continue
		}
		dst = append(dst, m)
	}
	if s.options.ReverseStart && st == s.start {
		back := st.Facing.Opposite()
		behind := st.Pos.Step(back)
		if s.g.At(behind) == grid.Open {
			dst = append(dst, Transition{To: State{Pos: behind, Facing: back}, Cost: ReverseCost})
		}
	}

	return dst
}

// Predecessor returns the state that moved into st while facing from.
// Every edge ends with a one-cell move along the arrival heading, so the
// predecessor always stands one step behind st.Pos.
func Predecessor(st State, from grid.Heading) State {
	return State{Pos: st.Pos.Sub(st.Facing.Vector()), Facing: from}
}

// ValidatePacked reports ErrStateSpaceOverflow when the grid is too wide or
// tall for PackKey.
func (s *Space) ValidatePacked() error {
	if s.g.Width() > MaxPackedDim || s.g.Height() > MaxPackedDim {
		return fmt.Errorf("%w: %dx%d exceeds packed limit %d", ErrStateSpaceOverflow, s.g.Width(), s.g.Height(), MaxPackedDim)
	}
	return nil
}

// PackKey packs st into a Key: x in bits 0-13, y in bits 14-27, heading in
// bits 28-29. Callers must have checked ValidatePacked for the grid.
func PackKey(st State) Key {
	return Key(uint32(st.Pos.X)&packedCoordMask |
		(uint32(st.Pos.Y)&packedCoordMask)<<packedCoordBits |
		(uint32(st.Facing)&3)<<(2*packedCoordBits))
}

// Unpack is the inverse of PackKey.
func (k Key) Unpack() State {
	return State{
		Pos: grid.Point{
			X: int(uint32(k) & packedCoordMask),
			Y: int(uint32(k) >> packedCoordBits & packedCoordMask),
		},
		Facing: grid.Heading(uint32(k) >> (2 * packedCoordBits) & 3),
	}
}
