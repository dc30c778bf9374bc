// Package grid defines core types and sentinel errors for the maze grid.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("grid: start cell out of bounds")
	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("grid: goal cell out of bounds")
	// ErrStartOnWall indicates the start cell is a wall.
	ErrStartOnWall = errors.New("grid: start cell is a wall")
	// ErrGoalOnWall indicates the goal cell is a wall.
	ErrGoalOnWall = errors.New("grid: goal cell is a wall")
	// ErrBadHeading indicates a heading outside East..North.
	ErrBadHeading = errors.New("grid: heading out of range")
	// ErrNoStart indicates the text form has no 'S' cell.
	ErrNoStart = errors.New("grid: no start cell")
	// ErrNoGoal indicates the text form has no 'E' cell.
	ErrNoGoal = errors.New("grid: no goal cell")
	// ErrDuplicateStart indicates the text form has more than one 'S' cell.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateGoal indicates the text form has more than one 'E' cell.
	ErrDuplicateGoal = errors.New("grid: more than one goal cell")
	// ErrBadCell indicates an unrecognized character in the text form.
	ErrBadCell = errors.New("grid: unrecognized cell character")
)

// Cell classifies a single grid square.
type Cell uint8

const (
	// Open is a traversable cell.
	Open Cell = iota
	// Wall blocks movement.
	Wall
)

// String returns the text-form character of the cell.
func (c Cell) String() string {
	if c == Wall {
		return "#"
	}
	return "."
}

// Heading is one of the four orthogonal directions an agent can face.
type Heading int8

const (
	East Heading = iota
	South
	West
	North
)

// NumHeadings is the number of distinct headings.
const NumHeadings = 4

// Headings lists every heading in cyclic order.
var Headings = [NumHeadings]Heading{East, South, West, North}

var headingVectors = [NumHeadings]Point{
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
	North: {0, -1},
}

var headingNames = [NumHeadings]string{"E", "S", "W", "N"}

// Valid reports whether h is one of East, South, West, North.
func (h Heading) Valid() bool { return h >= East && h <= North }

// Right returns the heading after a 90° clockwise turn.
func (h Heading) Right() Heading { return (h + 1) & 3 }

// Left returns the heading after a 90° counter-clockwise turn.
func (h Heading) Left() Heading { return (h + 3) & 3 }

// Opposite returns the reversed heading.
func (h Heading) Opposite() Heading { return (h + 2) & 3 }

// Vector returns the unit step taken when moving along h.
func (h Heading) Vector() Point { return headingVectors[h&3] }

func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", int8(h))
	}
	return headingNames[h]
}

// Point is a 2D integer coordinate. Points are compared with ==.
type Point struct {
	X, Y int
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// RotateRight rotates p by 90° clockwise in screen coordinates (Y down).
func (p Point) RotateRight() Point { return Point{-p.Y, p.X} }

// RotateLeft rotates p by 90° counter-clockwise in screen coordinates (Y down).
func (p Point) RotateLeft() Point { return Point{p.Y, -p.X} }

// Step returns the neighbor of p along heading h.
func (p Point) Step(h Heading) Point { return p.Add(h.Vector()) }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Grid is an immutable rectangular maze. Width and Height define dimensions;
// cells are stored row-major. The zero value is not usable; build one with New
// or Parse.
type Grid struct {
	width, height int
	cells         []Cell
	start         Point
	facing        Heading
	goal          Point
}
