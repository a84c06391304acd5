package search

import "fmt"

// IterativeDeepening runs DepthLimited with limits 1, 2, …, maxDepth until
// one succeeds, combining BreadthFirst's minimum-depth guarantee with
// DepthFirst's O(b·d) fringe. Shallow states are re-expanded on every
// iteration, so Metrics.Expanded accumulates across iterations while
// Metrics.PeakFringe is the maximum any single iteration observed.
//
// Before each iteration the problem is rewound to the start state via
// SetState; a rewind failure surfaces as ErrSetState. A start state that is
// already solved returns immediately with an empty path and cost 0.
//
// Returns ErrNilProblem, ErrBadDepthLimit (maxDepth < 1), ErrSetState, any
// inner DepthLimited error, or the no-solution Result once maxDepth is
// exhausted.
func IterativeDeepening[S comparable, A any](p Problem[S, A], maxDepth int, opts ...Option[S]) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if maxDepth < 1 {
		return nil, ErrBadDepthLimit
	}

	start := p.State()
	var met Metrics
	for limit := 1; limit <= maxDepth; limit++ {
		if err := p.SetState(start); err != nil {
			return nil, fmt.Errorf("%w: state %v: %v", ErrSetState, start, err)
		}

		res, err := DepthLimited(p, limit, opts...)
		if err != nil {
			return nil, err
		}
		met.Expanded += res.Metrics.Expanded
		if res.Metrics.PeakFringe > met.PeakFringe {
			met.PeakFringe = res.Metrics.PeakFringe
		}

		// Success is a finite cost, not a non-empty path: a pre-solved
		// start legitimately solves with zero actions.
		if res.Solved() {
			res.Metrics = met

			return res, nil
		}
	}

	return noSolution[A](met), nil
}
