// Package maze treats a 2D grid of integer cell values as a searchable
// state space: walkable cells are states, adjacent-cell movements are
// actions of unit cost, and one designated cell is the goal.
//
// It exists alongside slidepuzzle to demonstrate the engine's problem
// agnosticism: the same five strategies run unchanged over either.
//
// Cells with value < Options.WallBelow are walls; cells with value ≥
// WallBelow are walkable. Connectivity is four- or eight-directional.
package maze

import (
	"fmt"

	"github.com/kovaline/statesearch/search"
)

// Maze is a rectangular grid with a current position, a start and a goal.
// It implements search.Problem[Cell, Step].
type Maze struct {
	width, height int
	cells         [][]int
	start, goal   Cell
	current       Cell
	conn          Connectivity
	wallBelow     int
	offsets       []Step
}

// New constructs a Maze from a non-empty, rectangular 2D slice, deep-copied
// to ensure immutability. The current position starts at start.
// Returns ErrEmptyGrid or ErrNonRectangular for a malformed grid, and
// ErrCellOutOfBounds or ErrBlockedCell when start or goal is not walkable.
// Complexity: O(W×H) time and memory.
func New(values [][]int, start, goal Cell, opts Options) (*Maze, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	var offsets []Step
	if opts.Conn == Conn8 {
		offsets = []Step{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = []Step{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	m := &Maze{
		width:     w,
		height:    h,
		cells:     cells,
		start:     start,
		goal:      goal,
		current:   start,
		conn:      opts.Conn,
		wallBelow: opts.WallBelow,
		offsets:   offsets,
	}
	for _, c := range []Cell{start, goal} {
		if err := m.check(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// InBounds reports whether c lies within the grid boundaries. O(1).
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// Walkable reports whether c is in bounds and not a wall. O(1).
func (m *Maze) Walkable(c Cell) bool {
	return m.InBounds(c) && m.cells[c.Y][c.X] >= m.wallBelow
}

// check validates a cell as a legal position.
func (m *Maze) check(c Cell) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrCellOutOfBounds, c.X, c.Y, m.width, m.height)
	}
	if !m.Walkable(c) {
		return fmt.Errorf("%w: (%d,%d)", ErrBlockedCell, c.X, c.Y)
	}

	return nil
}

// Start returns the maze's start cell.
func (m *Maze) Start() Cell { return m.start }

// Goal returns the maze's goal cell.
func (m *Maze) Goal() Cell { return m.goal }

// State returns the current position.
func (m *Maze) State() Cell { return m.current }

// SetState moves the current position to c. Returns ErrCellOutOfBounds or
// ErrBlockedCell for an illegal position.
func (m *Maze) SetState(c Cell) error {
	if err := m.check(c); err != nil {
		return err
	}
	m.current = c

	return nil
}

// Solved reports whether the current position is the goal.
func (m *Maze) Solved() bool { return m.current == m.goal }

// Successors returns the walkable neighbors of c per the maze's
// connectivity, each a unit-cost step.
func (m *Maze) Successors(c Cell) ([]search.Successor[Cell, Step], error) {
	if err := m.check(c); err != nil {
		return nil, err
	}

	out := make([]search.Successor[Cell, Step], 0, len(m.offsets))
	for _, d := range m.offsets {
		n := Cell{X: c.X + d.DX, Y: c.Y + d.DY}
		if !m.Walkable(n) {
			continue
		}
		out = append(out, search.Successor[Cell, Step]{
			State:  n,
			Action: d,
			Cost:   1,
			Goal:   n == m.goal,
		})
	}

	return out, nil
}

// Remaining returns the admissible distance-to-goal heuristic for the
// maze's connectivity: Manhattan distance under Conn4, Chebyshev distance
// under Conn8 (diagonal steps cover one unit of both axes).
func (m *Maze) Remaining() search.HeuristicFunc[Cell] {
	goal := m.goal
	conn := m.conn

	return func(c Cell) float64 {
		dx := abs(c.X - goal.X)
		dy := abs(c.Y - goal.Y)
		if conn == Conn8 {
			if dx > dy {
				return float64(dx)
			}

			return float64(dy)
		}

		return float64(dx + dy)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
