package tiepath

import (
	"github.com/katalvlaran/tiepath/grid"
)

// Solve runs the search on g and counts the optimal-path tiles.
// ErrNoPath is returned, wrapped, when the goal is unreachable; the tile
// walk never runs in that case.
func Solve(g *grid.Grid, opts ...Option) (Result, error) {
	s, err := Run(g, opts...)
	if err != nil {
		return Result{}, err
	}
	tiles, err := CountOptimalTiles(s)
	if err != nil {
		return Result{}, err
	}

	return Result{MinCost: s.MinCost, Tiles: tiles, Stats: s.Stats}, nil
}
