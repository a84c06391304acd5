package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kovaline/statesearch/maze"
	"github.com/kovaline/statesearch/search"
)

// uTurn is a U-shaped corridor: the only route from (0,0) to (2,0) runs
// down the left wall, across the bottom, and up the right wall.
func uTurn() [][]int {
	return [][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
}

// TestNew_Validation covers grid-shape and endpoint validation.
func TestNew_Validation(t *testing.T) {
	_, err := maze.New(nil, maze.Cell{}, maze.Cell{}, maze.DefaultOptions())
	require.ErrorIs(t, err, maze.ErrEmptyGrid)

	_, err = maze.New([][]int{{1, 1}, {1}}, maze.Cell{}, maze.Cell{}, maze.DefaultOptions())
	require.ErrorIs(t, err, maze.ErrNonRectangular)

	_, err = maze.New(uTurn(), maze.Cell{X: 9, Y: 9}, maze.Cell{}, maze.DefaultOptions())
	require.ErrorIs(t, err, maze.ErrCellOutOfBounds)

	_, err = maze.New(uTurn(), maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0}, maze.DefaultOptions())
	require.ErrorIs(t, err, maze.ErrBlockedCell)
}

// TestSetState_Validation rejects walls and out-of-bounds positions.
func TestSetState_Validation(t *testing.T) {
	m, err := maze.New(uTurn(), maze.Cell{X: 0, Y: 0}, maze.Cell{X: 2, Y: 0}, maze.DefaultOptions())
	require.NoError(t, err)

	require.ErrorIs(t, m.SetState(maze.Cell{X: 1, Y: 1}), maze.ErrBlockedCell)
	require.ErrorIs(t, m.SetState(maze.Cell{X: -1, Y: 0}), maze.ErrCellOutOfBounds)
	require.NoError(t, m.SetState(maze.Cell{X: 2, Y: 2}))
	require.Equal(t, maze.Cell{X: 2, Y: 2}, m.State())
}

// TestBreadthFirst_Conn4 walks the six-step corridor.
func TestBreadthFirst_Conn4(t *testing.T) {
	m, err := maze.New(uTurn(), maze.Cell{X: 0, Y: 0}, maze.Cell{X: 2, Y: 0}, maze.DefaultOptions())
	require.NoError(t, err)

	res, err := search.BreadthFirst[maze.Cell, maze.Step](m)
	require.NoError(t, err)
	require.True(t, res.Solved())
	require.Equal(t, 6.0, res.Cost)
	require.Len(t, res.Path, 6)
}

// TestAStar_Conn8 cuts the corner diagonally: four steps under Chebyshev.
func TestAStar_Conn8(t *testing.T) {
	opts := maze.Options{Conn: maze.Conn8, WallBelow: 1}
	m, err := maze.New(uTurn(), maze.Cell{X: 0, Y: 0}, maze.Cell{X: 2, Y: 0}, opts)
	require.NoError(t, err)

	res, err := search.AStar[maze.Cell, maze.Step](m, m.Remaining())
	require.NoError(t, err)
	require.True(t, res.Solved())
	require.Equal(t, 4.0, res.Cost)
}

// TestAStar_HeuristicAgreesWithBreadthFirst checks optimality of the
// Manhattan-guided search against exhaustive BFS on an open grid.
func TestAStar_HeuristicAgreesWithBreadthFirst(t *testing.T) {
	open := [][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}
	m, err := maze.New(open, maze.Cell{X: 0, Y: 0}, maze.Cell{X: 3, Y: 2}, maze.DefaultOptions())
	require.NoError(t, err)

	bfsRes, err := search.BreadthFirst[maze.Cell, maze.Step](m)
	require.NoError(t, err)

	require.NoError(t, m.SetState(m.Start()))
	astarRes, err := search.AStar[maze.Cell, maze.Step](m, m.Remaining())
	require.NoError(t, err)

	require.Equal(t, 5.0, bfsRes.Cost)
	require.Equal(t, bfsRes.Cost, astarRes.Cost)
	require.LessOrEqual(t, astarRes.Metrics.Expanded, bfsRes.Metrics.Expanded)
}

// TestNoRoute reports the sentinel when walls seal the goal off.
func TestNoRoute(t *testing.T) {
	sealed := [][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 0, 1},
	}
	m, err := maze.New(sealed, maze.Cell{X: 0, Y: 0}, maze.Cell{X: 2, Y: 1}, maze.DefaultOptions())
	require.NoError(t, err)

	res, err := search.DepthFirst[maze.Cell, maze.Step](m)
	require.NoError(t, err)
	require.True(t, res.NoSolution())
	require.Equal(t, 3, res.Metrics.Expanded) // the left column only
}

// TestReplay walks a returned path step by step via SetState.
func TestReplay(t *testing.T) {
	m, err := maze.New(uTurn(), maze.Cell{X: 0, Y: 0}, maze.Cell{X: 2, Y: 0}, maze.DefaultOptions())
	require.NoError(t, err)

	res, err := search.IterativeDeepening[maze.Cell, maze.Step](m, 6)
	require.NoError(t, err)
	require.True(t, res.Solved())

	cur := m.Start()
	for _, s := range res.Path {
		cur = maze.Cell{X: cur.X + s.DX, Y: cur.Y + s.DY}
		require.True(t, m.Walkable(cur))
	}
	require.Equal(t, m.Goal(), cur)
}
