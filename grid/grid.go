package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cells
// indexed cells[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, and an endpoint error if
// start or goal is out of bounds or on a wall.
// Algorithmic complexity: O(W×H) time and memory.
func New(cells [][]Cell, start Point, facing Heading, goal Point) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	if !facing.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadHeading, facing)
	}
	// Deep copy into a flat row-major slice
	flat := make([]Cell, 0, w*h)
	for _, row := range cells {
		flat = append(flat, row...)
	}
	g := &Grid{
		width:  w,
		height: h,
		cells:  flat,
		start:  start,
		facing: facing,
		goal:   goal,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	if g.At(start) == Wall {
		return nil, fmt.Errorf("%w: %v", ErrStartOnWall, start)
	}
	if g.At(goal) == Wall {
		return nil, fmt.Errorf("%w: %v", ErrGoalOnWall, goal)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start cell and the heading the agent initially faces.
func (g *Grid) Start() (Point, Heading) { return g.start, g.facing }

// Goal returns the goal cell.
func (g *Grid) Goal() Point { return g.goal }

// IsGoal reports whether p is the goal cell.
func (g *Grid) IsGoal(p Point) bool { return p == g.goal }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At classifies the cell at p. Cells outside the grid read as Wall, so a
// move can never leave the bounds.
// Complexity: O(1).
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.Index(p)]
}

// Classify is At expressed on raw coordinates.
func (g *Grid) Classify(x, y int) Cell { return g.At(Point{x, y}) }

// Index maps p to a row-major index: y*Width + x. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx % g.width, idx / g.width}
}

// Size returns Width×Height.
func (g *Grid) Size() int { return len(g.cells) }

// String renders the grid in its text form, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{x, y}
			switch {
			case p == g.start:
				sb.WriteByte(startChar)
			case p == g.goal:
				sb.WriteByte(goalChar)
			case g.cells[g.Index(p)] == Wall:
				sb.WriteByte(wallChar)
			default:
				sb.WriteByte(openChar)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
