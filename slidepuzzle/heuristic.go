package slidepuzzle

import (
	"strconv"
	"strings"

	"github.com/kovaline/statesearch/search"
)

// Manhattan returns the sum-of-tile-distances heuristic: for every tile
// except the blank, the number of rows plus columns it sits away from its
// home cell. Each move slides exactly one tile one cell, so the estimate
// never overestimates — it is admissible for unit-cost puzzles, and it
// dominates MisplacedTiles.
//
// The heuristic parses state keys in the encoding produced by State; a
// malformed key contributes 0, which keeps the estimate admissible.
func (p *Puzzle) Manhattan() search.HeuristicFunc[string] {
	cols := p.cols

	return func(state string) float64 {
		sum := 0
		for i, f := range strings.Fields(state) {
			tile, err := strconv.Atoi(f)
			if err != nil || tile == blankTile {
				continue
			}
			sum += abs(i/cols-tile/cols) + abs(i%cols-tile%cols)
		}

		return float64(sum)
	}
}

// MisplacedTiles returns the count-of-wrong-tiles heuristic: the number of
// non-blank tiles not at their home cell. Admissible (each misplaced tile
// needs at least one move) but weaker than Manhattan.
func (p *Puzzle) MisplacedTiles() search.HeuristicFunc[string] {
	return func(state string) float64 {
		count := 0
		for i, f := range strings.Fields(state) {
			tile, err := strconv.Atoi(f)
			if err != nil || tile == blankTile {
				continue
			}
			if tile != i {
				count++
			}
		}

		return float64(count)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
