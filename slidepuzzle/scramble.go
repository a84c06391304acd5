package slidepuzzle

import "fmt"

// frontierItem pairs a state key with its distance from the current state.
type frontierItem struct {
	state string
	depth int
}

// Scramble returns n distinct states whose optimal solutions take exactly
// turns moves from the current position. It grows a breadth-first frontier
// until its head reaches the requested depth — first discovery in BFS order
// guarantees the depth is the true optimal distance — then samples n states
// from that layer.
//
// The puzzle's current position is left untouched. Returns ErrScrambleDepth
// when the reachable space is exhausted before the requested depth or the
// layer holds fewer than n states.
func (p *Puzzle) Scramble(turns, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: requested %d states", ErrScrambleDepth, n)
	}

	fringe := []frontierItem{{state: p.State(), depth: 0}}
	seen := map[string]bool{p.State(): true}
	for len(fringe) > 0 && fringe[0].depth < turns {
		it := fringe[0]
		fringe = fringe[1:]

		succs, err := p.Successors(it.state)
		if err != nil {
			return nil, err
		}
		for _, sc := range succs {
			if seen[sc.State] {
				continue
			}
			seen[sc.State] = true
			fringe = append(fringe, frontierItem{state: sc.State, depth: it.depth + 1})
		}
	}

	// Everything left sits exactly at depth turns (BFS frontiers are
	// monotone in depth).
	if len(fringe) < n {
		return nil, fmt.Errorf("%w: depth %d holds %d states, want %d", ErrScrambleDepth, turns, len(fringe), n)
	}

	states := make([]string, 0, n)
	for _, i := range p.rng.Perm(len(fringe))[:n] {
		states = append(states, fringe[i].state)
	}

	return states, nil
}
