package search_test

import (
	"fmt"

	"github.com/kovaline/statesearch/search"
)

// ExampleBreadthFirst finds the fewest-action route through a small
// corridor graph A→B→C→D.
func ExampleBreadthFirst() {
	g := lineGraph()

	res, err := search.BreadthFirst[string, string](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path, res.Cost, res.Metrics.Expanded)
	// Output:
	// [B C D] 3 3
}

// ExampleAStar picks the cheap three-step detour over the expensive
// single-action shortcut, guided by the zero heuristic (uniform-cost).
func ExampleAStar() {
	g := tollRoad()

	res, err := search.AStar[string, string](g, search.Zero[string]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path, res.Cost)
	// Output:
	// [B C D] 3
}

// ExampleIterativeDeepening reports the no-solution sentinel when the goal
// lies beyond the maximum depth.
func ExampleIterativeDeepening() {
	g := lineGraph()

	res, err := search.IterativeDeepening[string, string](g, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.NoSolution(), len(res.Path), res.Metrics.Expanded)
	// Output:
	// true 0 3
}
