package search

import (
	"fmt"
	"math"
)

// buildOptions applies functional options over the defaults.
func buildOptions[S comparable](opts []Option[S]) Options[S] {
	o := DefaultOptions[S]()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// startNode seeds a search: empty path, zero cost, goal flag taken from the
// problem's current solved status.
func startNode[S comparable, A any](p Problem[S, A]) node[S, A] {
	return node[S, A]{state: p.State(), cost: 0, goal: p.Solved()}
}

// expand marks n's state visited, counts the expansion, fires the hook, and
// returns a child node for every successor whose state is not yet visited.
// Duplicate suppression happens here, at expansion time — the same key may
// already sit in the fringe more than once, which is by contract.
func expand[S comparable, A any](
	p Problem[S, A],
	n node[S, A],
	visited map[S]bool,
	o *Options[S],
	m *Metrics,
) ([]node[S, A], error) {
	visited[n.state] = true
	m.Expanded++
	o.OnExpand(n.state, len(n.path))

	succs, err := p.Successors(n.state)
	if err != nil {
		return nil, fmt.Errorf("%w: state %v: %v", ErrSuccessors, n.state, err)
	}

	children := make([]node[S, A], 0, len(succs))
	for _, sc := range succs {
		if sc.Cost < 0 {
			return nil, fmt.Errorf("%w: action %v cost %g", ErrNegativeCost, sc.Action, sc.Cost)
		}
		if visited[sc.State] {
			continue
		}
		children = append(children, node[S, A]{
			state: sc.State,
			path:  extend(n.path, sc.Action),
			cost:  n.cost + sc.Cost,
			goal:  sc.Goal,
			depth: n.depth + 1,
		})
	}

	return children, nil
}

// extend returns a fresh copy of path with a appended. Nodes never share
// backing arrays, so sibling paths cannot clobber each other.
func extend[A any](path []A, a A) []A {
	next := make([]A, len(path)+1)
	copy(next, path)
	next[len(path)] = a

	return next
}

// found converts a goal node into a successful Result.
func found[S comparable, A any](n node[S, A], m Metrics) *Result[A] {
	return &Result[A]{Path: n.path, Cost: n.cost, Metrics: m}
}

// noSolution is the designed "no solution found" signal: an empty path and
// an infinite cost, with the effort spent so far. It is not an error.
func noSolution[A any](m Metrics) *Result[A] {
	return &Result[A]{Path: nil, Cost: math.Inf(1), Metrics: m}
}
