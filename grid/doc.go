// Package grid holds the read-only maze a heading-aware search runs over.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell classification (Open or Wall) with a
//     designated start cell, start heading and goal cell.
//   - Point and Heading provide the 2D coordinate arithmetic the search needs:
//     add, subtract, rotate by 90°, equality.
//   - Parse reads the common text form ('#' wall, '.' open, 'S' start, 'E' goal).
//
// Coordinates:
//
//   - X grows to the right, Y grows downward.
//   - Headings are cyclic East → South → West → North, so Right() is +1 mod 4
//     (clockwise on screen) and Left() is -1 mod 4.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory (the input is deep-copied).
//   - At, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrStartOutOfBounds / ErrGoalOutOfBounds: endpoints outside the grid.
//   - ErrStartOnWall / ErrGoalOnWall: endpoints on a wall cell.
//   - ErrNoStart / ErrNoGoal / ErrDuplicateStart / ErrDuplicateGoal /
//     ErrBadCell: text-form problems reported by Parse.
package grid
