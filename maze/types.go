// Package maze defines cell and step types, connectivity options, and
// sentinel errors for the grid-maze problem.
package maze

import "errors"

// Sentinel errors for maze construction and state manipulation.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrCellOutOfBounds indicates a cell outside the grid.
	ErrCellOutOfBounds = errors.New("maze: cell out of bounds")
	// ErrBlockedCell indicates a cell below the wall threshold.
	ErrBlockedCell = errors.New("maze: cell is a wall")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies a grid position: X is the column, Y the row (Y grows
// downward). Cell is the maze's opaque state key for the search engine.
type Cell struct {
	X, Y int
}

// Step is one movement between adjacent cells, as a (DX, DY) offset. Steps
// are the maze's opaque actions.
type Step struct {
	DX, DY int
}

// String renders the step as a compass direction.
func (s Step) String() string {
	switch s {
	case Step{0, -1}:
		return "N"
	case Step{1, -1}:
		return "NE"
	case Step{1, 0}:
		return "E"
	case Step{1, 1}:
		return "SE"
	case Step{0, 1}:
		return "S"
	case Step{-1, 1}:
		return "SW"
	case Step{-1, 0}:
		return "W"
	case Step{-1, -1}:
		return "NW"
	}

	return "?"
}

// Options contains tunable parameters for maze construction.
type Options struct {
	// Conn selects 4- or 8-connectivity.
	Conn Connectivity

	// WallBelow is the threshold below which a cell value is an
	// impassable wall. With the default of 1, value 0 is a wall and any
	// positive value is walkable.
	WallBelow int
}

// DefaultOptions returns Options with Conn4 connectivity and walls below 1.
func DefaultOptions() Options {
	return Options{Conn: Conn4, WallBelow: 1}
}
