// Package search implements five traversal strategies over abstract,
// caller-supplied state spaces: breadth-first, depth-first, depth-limited,
// iterative deepening, and heuristic best-first (A*).
//
// # What
//
//   - A Problem[S, A] supplies state identity, successor generation and goal
//     testing; S is any comparable state key, A any opaque action type.
//   - Every strategy shares one skeleton: seed the fringe with the current
//     state, then repeatedly remove one node per the strategy's discipline
//     (FIFO, LIFO, or min-priority), return its path and cost if its goal
//     flag is set, otherwise expand it — generating successors and inserting
//     the unvisited ones.
//   - Every strategy returns a Result[A]: the action path, the total cost,
//     and call-scoped Metrics (expansions, peak fringe size).
//
// # Why
//
//   - One engine for sliding puzzles, mazes, or any discrete state graph —
//     the engine never inspects a state, it only compares keys.
//   - The strategy choice is a fringe-discipline choice: trade optimality
//     guarantees against memory and expansion counts, measured honestly by
//     the returned Metrics.
//
// # Revisit policy
//
//	A state key is expanded at most once per invocation. The same key may
//	sit in the fringe multiple times; duplicates are suppressed when popped,
//	not when pushed — insertion stays cheap at the price of a looser fringe.
//	Goal flags are recorded when a successor is generated and acted on when
//	the node is removed, so a goal node queued behind cheaper non-goal nodes
//	is not returned prematurely.
//
// # Guarantees
//
//   - BreadthFirst: minimum action count under uniform step costs.
//   - DepthFirst: some path, O(b·d) fringe, no optimality.
//   - DepthLimited: a path only if a goal lies within the bound.
//   - IterativeDeepening: minimum-depth path, re-expanding shallow states.
//   - AStar: minimum total cost when the heuristic is admissible.
//
// # Concurrency
//
//	Strategies are synchronous and run to completion. All bookkeeping is
//	call-scoped — two goroutines may search the same Problem type
//	concurrently as long as each gets its own Problem value (Successors
//	implementations typically mutate the underlying problem while probing).
//
// # Usage
//
//	p, _ := slidepuzzle.New(3, 3)
//	res, err := search.AStar[string, slidepuzzle.Move](p, p.Manhattan(),
//	    search.WithContext[string](ctx),
//	)
//	if err != nil {
//	    // ErrNilProblem, ErrNilHeuristic, ErrNegativeCost, ErrSuccessors,
//	    // or ctx.Err()
//	}
//	if res.NoSolution() {
//	    // designed outcome, not an error: empty path, infinite cost
//	}
//
// # Errors
//
//   - ErrNilProblem / ErrNilHeuristic  nil collaborators.
//   - ErrBadDepthLimit                 depth bound below 1.
//   - ErrNegativeCost                  malformed Problem response.
//   - ErrSuccessors                    wrapped Problem.Successors failure.
//   - ErrSetState                      wrapped rewind failure (iterative deepening).
//   - context.Canceled / DeadlineExceeded when the caller's context fires;
//     checked once per node removal.
package search
