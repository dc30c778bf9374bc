package statespace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiepath/grid"
	"github.com/katalvlaran/tiepath/statespace"
)

func mustSpace(t *testing.T, src string, opts ...statespace.Option) *statespace.Space {
	t.Helper()
	g, err := grid.ParseString(src)
	require.NoError(t, err)
	sp, err := statespace.New(g, opts...)
	require.NoError(t, err)
	return sp
}

func TestNew_NilGrid(t *testing.T) {
	_, err := statespace.New(nil)
	assert.ErrorIs(t, err, statespace.ErrNilGrid)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	sp := mustSpace(t, "#####\n#S..#\n#..E#\n#####\n")
	require.Equal(t, 5*4*4, sp.Len())

	seen := make(map[int]bool, sp.Len())
	for idx := 0; idx < sp.Len(); idx++ {
		st := sp.Decode(idx)
		assert.Equal(t, idx, sp.Encode(st))
		assert.False(t, seen[idx])
		seen[idx] = true
	}
}

func TestPackKey_RoundTrip(t *testing.T) {
	cases := []statespace.State{
		{Pos: grid.Point{X: 0, Y: 0}, Facing: grid.East},
		{Pos: grid.Point{X: 139, Y: 2}, Facing: grid.North},
		{Pos: grid.Point{X: statespace.MaxPackedDim - 1, Y: statespace.MaxPackedDim - 1}, Facing: grid.West},
	}
	for _, st := range cases {
		assert.Equal(t, st, statespace.PackKey(st).Unpack(), "state %v", st)
	}
	assert.NotEqual(t,
		statespace.PackKey(statespace.State{Pos: grid.Point{X: 1, Y: 0}}),
		statespace.PackKey(statespace.State{Pos: grid.Point{X: 0, Y: 1}}))
}

func TestDenseCapacity(t *testing.T) {
	n, err := statespace.DenseCapacity(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	// 23170*23170*4 fits int32; one more column does not.
	n, err = statespace.DenseCapacity(23170, 23170)
	require.NoError(t, err)
	assert.Equal(t, 23170*23170*4, n)

	_, err = statespace.DenseCapacity(23171, 23170)
	assert.ErrorIs(t, err, statespace.ErrStateSpaceOverflow)
	_, err = statespace.DenseCapacity(1<<20, 1<<20)
	assert.ErrorIs(t, err, statespace.ErrStateSpaceOverflow)
}

func TestValidatePacked(t *testing.T) {
	sp := mustSpace(t, "#S.E#\n")
	assert.NoError(t, sp.ValidatePacked())
}

func TestSuccessors_CorridorAndTurns(t *testing.T) {
	// Start at (1,2) facing East; north is open, south is a wall.
	sp := mustSpace(t, ""+
		"#####\n"+
		"#.#E#\n"+
		"#S..#\n"+
		"#####\n")
	start := sp.Start()
	got := sp.Successors(start, nil)

	assert.ElementsMatch(t, []statespace.Transition{
		{To: statespace.State{Pos: grid.Point{X: 2, Y: 2}, Facing: grid.East}, Cost: statespace.StepCost},
		{To: statespace.State{Pos: grid.Point{X: 1, Y: 1}, Facing: grid.North}, Cost: statespace.TurnCost},
	}, got)
}

func TestSuccessors_ReverseStart(t *testing.T) {
	src := "" +
		"######\n" +
		"#.S.E#\n" +
		"######\n"
	behind := statespace.Transition{
		To:   statespace.State{Pos: grid.Point{X: 1, Y: 1}, Facing: grid.West},
		Cost: statespace.ReverseCost,
	}

	sp := mustSpace(t, src)
	assert.Contains(t, sp.Successors(sp.Start(), nil), behind)

	off := mustSpace(t, src, statespace.WithReverseStart(false))
	assert.NotContains(t, off.Successors(off.Start(), nil), behind)
	assert.False(t, off.Options().ReverseStart)
}

// TestSuccessors_ReverseOnlyFromStart ensures no other state gets the reverse edge,
// including the start cell faced in another heading.
func TestSuccessors_ReverseOnlyFromStart(t *testing.T) {
	sp := mustSpace(t, "#######\n#.S..E#\n#######\n")
	for idx := 0; idx < sp.Len(); idx++ {
		st := sp.Decode(idx)
		if st == sp.Start() {
			continue
		}
		for _, tr := range sp.Successors(st, nil) {
			assert.NotEqual(t, statespace.ReverseCost, tr.Cost, "reverse edge offered from %v", st)
		}
	}
}

func TestSuccessors_NeverIntoWalls(t *testing.T) {
	sp := mustSpace(t, "#####\n#S#.#\n#...#\n#.#E#\n#####\n")
	g := sp.Grid()
	for idx := 0; idx < sp.Len(); idx++ {
		st := sp.Decode(idx)
		if g.At(st.Pos) == grid.Wall {
			continue
		}
		for _, tr := range sp.Successors(st, nil) {
			assert.Equal(t, grid.Open, g.At(tr.To.Pos), "transition %v -> %v", st, tr.To)
			assert.Equal(t, st, statespace.Predecessor(tr.To, st.Facing), "predecessor of %v", tr.To)
		}
	}
}

func TestIsGoal_AnyHeading(t *testing.T) {
	sp := mustSpace(t, "#S.E#\n")
	for _, h := range grid.Headings {
		assert.True(t, sp.IsGoal(statespace.State{Pos: grid.Point{X: 3, Y: 0}, Facing: h}))
	}
	assert.False(t, sp.IsGoal(sp.Start()))
}
