// Package tiepath finds the minimal cost of walking a maze with a heading,
// and every cell that lies on any path achieving that cost.
//
// Overview:
//
//   - The agent stands on a cell and faces one of four headings. Moving one
//     cell straight ahead costs 1; turning 90° and moving costs 1001. From the
//     start state only, reversing out of the start cell costs 2001.
//   - Run is a Dijkstra search over (cell, heading) states. Instead of a single
//     parent, each state records the set of predecessor headings that reach it
//     at its minimal cost (ties are kept, not broken).
//   - CountOptimalTiles walks that predecessor graph backward from every goal
//     state at the minimal cost, counting each cell once.
//   - Solve chains both and returns Result{MinCost, Tiles}.
//
// Key features:
//
//   - Bounded-integer bucket queue frontier (default) or a binary heap.
//   - Dense slice-backed records (default) or sparse map-backed records keyed
//     by a bit-packed state key.
//   - Explicit work stack for the reverse walk; no recursion depth limits.
//   - OnSettle hook for observing settlement order; slog debug logging.
//
// Performance and complexity:
//
//   - Time:  O(S) with the bucket queue, O(S log S) with the heap,
//     where S = W×H×4 states.
//   - Space: O(S) for dense records, O(W×H) for the visited-cell bitmap.
//
// Error handling (sentinel errors):
//
//   - ErrNoPath: the goal is unreachable. The only expected failure.
//   - ErrNilGrid: a nil grid was passed.
//   - statespace.ErrStateSpaceOverflow: the grid does not fit the encoding.
//   - ErrBadFrontier / ErrBadStorage: raised via panic by the option
//     constructors, returned by ParseFrontier / ParseStorage.
//
// Thread safety:
//
//   - A Search is single-owner. Concurrent Solve calls on the same *grid.Grid
//     are safe because the grid is immutable.
//
// Example usage:
//
//	g, err := grid.ParseString(maze)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := tiepath.Solve(g)
//	if errors.Is(err, tiepath.ErrNoPath) {
//	    fmt.Println("no path")
//	    return
//	}
//	fmt.Println(res.MinCost, res.Tiles)
package tiepath
