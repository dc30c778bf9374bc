package tiepath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiepath/frontier"
	"github.com/katalvlaran/tiepath/grid"
	"github.com/katalvlaran/tiepath/tiepath"
)

// loopMaze has two mirror-image optimal paths around a central block that
// share only the start and goal cells.
const loopMaze = "" +
	"#######\n" +
	"#.....#\n" +
	"#.###.#\n" +
	"#S###E#\n" +
	"#.###.#\n" +
	"#.....#\n" +
	"#######\n"

// loopMazeNorthBlocked is loopMaze with a wall on the northern path.
const loopMazeNorthBlocked = "" +
	"#######\n" +
	"#..#..#\n" +
	"#.###.#\n" +
	"#S###E#\n" +
	"#.###.#\n" +
	"#.....#\n" +
	"#######\n"

// loopMazeBothBlocked is loopMaze with both paths walled off.
const loopMazeBothBlocked = "" +
	"#######\n" +
	"#..#..#\n" +
	"#.###.#\n" +
	"#S###E#\n" +
	"#.###.#\n" +
	"#..#..#\n" +
	"#######\n"

func mustParse(t testing.TB, src string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(src)
	require.NoError(t, err)
	return g
}

func mustLoad(t testing.TB, name string) *grid.Grid {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()
	g, err := grid.Parse(f)
	require.NoError(t, err)
	return g
}

// variants lists every frontier × storage combination.
func variants() map[string][]tiepath.Option {
	return map[string][]tiepath.Option{
		"bucket/dense":  {tiepath.WithFrontier(frontier.KindBucket), tiepath.WithStorage(tiepath.StorageDense)},
		"bucket/sparse": {tiepath.WithFrontier(frontier.KindBucket), tiepath.WithStorage(tiepath.StorageSparse)},
		"heap/dense":    {tiepath.WithFrontier(frontier.KindHeap), tiepath.WithStorage(tiepath.StorageDense)},
		"heap/sparse":   {tiepath.WithFrontier(frontier.KindHeap), tiepath.WithStorage(tiepath.StorageSparse)},
	}
}
