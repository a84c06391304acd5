package search

// DepthFirst explores as deep as possible along one branch before
// backtracking: the fringe is a LIFO stack. It finds some path to a goal if
// one is reachable, not necessarily the shortest, and may expand
// exponentially more nodes than BreadthFirst on adversarial spaces — its
// advantage is the O(b·d) fringe instead of a full frontier.
//
// Error and termination behavior match BreadthFirst.
func DepthFirst[S comparable, A any](p Problem[S, A], opts ...Option[S]) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := buildOptions(opts)

	return lifo(p, &o, noDepthBound)
}

// DepthLimited is DepthFirst with a depth bound: nodes at depth == limit
// are pruned, not expanded, so only goals within limit actions of the start
// can be found. A goal node generated at the boundary is still returned,
// because goal flags are checked at removal before the depth test.
//
// Returns ErrBadDepthLimit when limit < 1; otherwise behaves like
// DepthFirst. A goal deeper than limit yields the no-solution Result.
func DepthLimited[S comparable, A any](p Problem[S, A], limit int, opts ...Option[S]) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if limit < 1 {
		return nil, ErrBadDepthLimit
	}
	o := buildOptions(opts)

	return lifo(p, &o, limit)
}

// noDepthBound disables the depth test in lifo.
const noDepthBound = -1

// lifo is the shared stack-driven loop behind DepthFirst and DepthLimited.
// With limit == noDepthBound every unvisited node is expanded; otherwise a
// node is expanded only while its depth is strictly below limit.
func lifo[S comparable, A any](p Problem[S, A], o *Options[S], limit int) (*Result[A], error) {
	var met Metrics
	fringe := []node[S, A]{startNode(p)}
	met.PeakFringe = 1
	visited := make(map[S]bool)

	for len(fringe) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		n := fringe[len(fringe)-1]
		fringe = fringe[:len(fringe)-1]
		if n.goal {
			return found(n, met), nil
		}
		if visited[n.state] {
			continue
		}
		if limit != noDepthBound && n.depth >= limit {
			continue // beyond the bound: prune, do not expand
		}

		children, err := expand(p, n, visited, o, &met)
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
