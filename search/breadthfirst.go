package search

// BreadthFirst explores states in increasing action count from the start:
// the fringe is a FIFO queue, so all paths of length d are examined before
// any path of length d+1. Under uniform step costs the returned path has
// the minimum possible number of actions; for non-uniform costs no cost
// optimality is guaranteed — use AStar instead.
//
// A goal flag carried by a fringe node is only checked when the node is
// removed, never when it is inserted.
//
// Returns ErrNilProblem for a nil problem, ErrNegativeCost or ErrSuccessors
// for malformed Problem responses, or the context's error on cancellation.
// Fringe exhaustion is not an error: the Result carries an empty path and
// an infinite cost.
//
// Complexity, with b the branching factor and d the shallowest goal depth:
//
//   - Time:   O(b^d)
//   - Memory: O(b^d) — the fringe holds an entire frontier; the Result's
//     Metrics.PeakFringe reports the high-water mark actually observed.
func BreadthFirst[S comparable, A any](p Problem[S, A], opts ...Option[S]) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := buildOptions(opts)

	var met Metrics
	fringe := []node[S, A]{startNode(p)}
	met.PeakFringe = 1
	visited := make(map[S]bool)

	for len(fringe) > 0 {
		// cancellation check, once per removal
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		n := fringe[0]
		fringe = fringe[1:]
		if n.goal {
			return found(n, met), nil
		}
		if visited[n.state] {
			continue
		}

		children, err := expand(p, n, visited, &o, &met)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			fringe = append(fringe, c)
			if len(fringe) > met.PeakFringe {
				met.PeakFringe = len(fringe)
			}
		}
	}

	return noSolution[A](met), nil
}
