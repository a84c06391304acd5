package maze_test

import (
	"fmt"

	"github.com/kovaline/statesearch/maze"
	"github.com/kovaline/statesearch/search"
)

// ExampleMaze demonstrates routing through a U-shaped corridor: the only
// path runs down the left wall, across the bottom and back up.
func ExampleMaze() {
	grid := [][]int{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	m, err := maze.New(grid, maze.Cell{X: 0, Y: 0}, maze.Cell{X: 2, Y: 0}, maze.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.AStar[maze.Cell, maze.Step](m, m.Remaining())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path, res.Cost)
	// Output:
	// [S S E E N N] 6
}
