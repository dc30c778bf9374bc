package tiepath

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/katalvlaran/tiepath/grid"
	"github.com/katalvlaran/tiepath/statespace"
)

// CountOptimalTiles returns the number of distinct cells that lie on at least
// one minimal-cost path, start and goal cells included.
//
// Behavior:
//  1. Seed a work stack with every goal state settled at MinCost.
//  2. Pop a state; mark and count its cell if unmarked.
//  3. Stop the branch on the start cell; otherwise push the predecessor of
//     every heading in the state's mask, then clear the mask so a shared
//     predecessor is expanded only once.
//
// The walk runs once per Search; later calls return the cached result.
// Complexity: O(E*) time, E* = edges of the optimal-path DAG; O(W×H) memory.
func CountOptimalTiles(s *Search) (int, error) {
	tiles, err := OptimalTiles(s)
	if err != nil {
		return 0, err
	}
	return len(tiles), nil
}

// OptimalTiles returns the cells counted by CountOptimalTiles in row-major
// order.
func OptimalTiles(s *Search) ([]grid.Point, error) {
	if s == nil {
		return nil, ErrNilSearch
	}
	if !s.walked {
		s.tiles = s.walk()
		s.walked = true
		s.logger.Debug("optimal tiles counted", slog.Int("tiles", len(s.tiles)))
	}
	out := make([]grid.Point, len(s.tiles))
	copy(out, s.tiles)

	return out, nil
}

func (s *Search) walk() []grid.Point {
	g := s.space.Grid()
	startPos := s.space.Start().Pos
	visited := make([]bool, g.Size())
	var tiles []grid.Point

	stack := make([]statespace.State, 0, len(s.Goals)+16)
	stack = append(stack, s.Goals...)
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if i := g.Index(st.Pos); !visited[i] {
			visited[i] = true
			tiles = append(tiles, st.Pos)
		}
		if st.Pos == startPos {
			continue
		}

		rec := s.records.at(st)
		mask := rec.Mask
		rec.Mask = 0
		for _, h := range grid.Headings {
			if mask.Has(h) {
				stack = append(stack, statespace.Predecessor(st, h))
			}
		}
	}

	sort.Slice(tiles, func(i, j int) bool { return g.Index(tiles[i]) < g.Index(tiles[j]) })
	return tiles
}

// Overlay renders g with every cell in tiles drawn as 'O'.
func Overlay(g *grid.Grid, tiles []grid.Point) string {
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	buf := make([][]byte, len(rows))
	for y, row := range rows {
		buf[y] = []byte(row)
	}
	for _, p := range tiles {
		if g.InBounds(p) {
			buf[p.Y][p.X] = 'O'
		}
	}

	var sb strings.Builder
	for _, row := range buf {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
