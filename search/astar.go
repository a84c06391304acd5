package search

import "github.com/kovaline/statesearch/pqueue"

// AStar is best-first search ordered by f(n) = g(n) + h(n): accumulated
// cost plus the heuristic's estimate of the cost remaining. When h never
// overestimates the true remaining cost (is admissible), the returned path
// has minimum total cost among all paths from the start to any goal.
//
// The heuristic is an injected capability; pass Zero[S]() to degrade to
// uniform-cost search. Revisit suppression is identical to the other
// strategies: a state is expanded at most once, duplicates may coexist in
// the fringe, and ties in f are broken by insertion order.
//
// Returns ErrNilProblem, ErrNilHeuristic, ErrNegativeCost, ErrSuccessors,
// or the context's error on cancellation. Fringe exhaustion yields the
// no-solution Result.
//
// Complexity: O((V + E) log V) time over the reachable portion of the state
// graph, O(V + E) memory under lazy duplicate insertion.
func AStar[S comparable, A any](p Problem[S, A], h Heuristic[S], opts ...Option[S]) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := buildOptions(opts)

	var met Metrics
	seed := startNode(p)
	fringe := pqueue.New[node[S, A]](16)
	fringe.Push(seed, h.Estimate(seed.state))
	met.PeakFringe = 1
	visited := make(map[S]bool)

	for !fringe.Empty() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		n, _ := fringe.Pop()
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
			fringe.Push(c, c.cost+h.Estimate(c.state))
			if fringe.Len() > met.PeakFringe {
				met.PeakFringe = fringe.Len()
			}
		}
	}

	return noSolution[A](met), nil
}
