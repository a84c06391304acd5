// Package search defines the Problem/Heuristic contracts, tunable options,
// result types and sentinel errors shared by all five strategies.
package search

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors for strategy execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a strategy.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilHeuristic is returned when AStar receives a nil Heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrBadDepthLimit is returned when a depth bound is below 1.
	ErrBadDepthLimit = errors.New("search: depth limit must be at least 1")

	// ErrNegativeCost is returned when a Problem reports a successor with a
	// negative step cost. The engine surfaces malformed collaborator
	// responses instead of masking them.
	ErrNegativeCost = errors.New("search: negative successor step cost")

	// ErrSuccessors wraps a failure reported by Problem.Successors.
	ErrSuccessors = errors.New("search: successor generation failed")

	// ErrSetState wraps a failure reported by Problem.SetState while
	// iterative deepening rewinds between depth iterations.
	ErrSetState = errors.New("search: problem state rewind failed")
)

// Problem is the capability set a caller supplies to every strategy.
// S is the opaque state key: the engine never inspects it, only uses it for
// equality and as a map key. A is the opaque action type accumulated into
// the solution path.
type Problem[S comparable, A any] interface {
	// State returns the key of the problem's current state.
	State() S

	// SetState rewinds or advances the external problem to a given state.
	// Used by iterative deepening between depth iterations.
	SetState(S) error

	// Solved reports whether the current state is a goal state.
	Solved() bool

	// Successors returns every state reachable from the given state in one
	// action. Step costs must be non-negative. An empty slice means the
	// state is a dead end, not an error.
	Successors(S) ([]Successor[S, A], error)
}

// Successor describes one state reachable in a single action.
type Successor[S comparable, A any] struct {
	State  S       // key of the successor state
	Action A       // action that produces it
	Cost   float64 // non-negative step cost
	Goal   bool    // whether the successor state is itself a goal
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
// Estimates must be non-negative. Admissibility (never overestimating the
// true remaining cost) is required only for AStar's optimality guarantee;
// the engine does not enforce it.
type Heuristic[S comparable] interface {
	Estimate(S) float64
}

// HeuristicFunc adapts a plain function into a Heuristic.
type HeuristicFunc[S comparable] func(S) float64

// Estimate calls f(s).
func (f HeuristicFunc[S]) Estimate(s S) float64 { return f(s) }

// Zero is the trivial all-zero heuristic; it turns AStar into uniform-cost
// search and is admissible for any problem.
func Zero[S comparable]() Heuristic[S] {
	return HeuristicFunc[S](func(S) float64 { return 0 })
}

// Metrics reports the effort a single strategy invocation spent. It travels
// inside the Result, so concurrent invocations never share state.
type Metrics struct {
	// Expanded counts states whose successors were generated. Each state is
	// expanded at most once per invocation; iterative deepening accumulates
	// across its depth iterations.
	Expanded int

	// PeakFringe is the largest number of nodes held in the fringe at any
	// point during the invocation — the search's peak memory footprint in
	// nodes. Iterative deepening reports the maximum across iterations.
	PeakFringe int
}

// Result is the outcome of one strategy invocation.
type Result[A any] struct {
	// Path is the action sequence from the start state to the goal found.
	// Empty when no solution was found, and also when the start state was
	// already solved.
	Path []A

	// Cost is the accumulated step cost of Path, or math.Inf(1) when no
	// solution was found within the strategy's bound.
	Cost float64

	// Metrics is the effort spent producing this result.
	Metrics Metrics
}

// Solved reports whether a goal was reached (finite cost). A pre-solved
// start state yields Solved() == true with an empty Path and Cost 0.
func (r *Result[A]) Solved() bool { return !math.IsInf(r.Cost, 1) }

// NoSolution reports the designed "no solution found" outcome: an empty
// path paired with an infinite cost. It is not an error.
func (r *Result[A]) NoSolution() bool { return math.IsInf(r.Cost, 1) }

// node is a fringe element. Nodes are created when a state is pushed onto
// the fringe, never mutated, and discarded once popped and processed.
type node[S comparable, A any] struct {
	state S       // opaque state key
	path  []A     // actions from the start state to this node
	cost  float64 // accumulated step cost of path
	goal  bool    // goal flag, recorded at generation time, checked at removal
	depth int     // distance from the start in actions; used by depth-limited only
}

// Option configures strategy behavior via functional arguments.
type Option[S comparable] func(*Options[S])

// Options holds the parameters and callbacks shared by all strategies.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines. It is checked once per node
	// removal, i.e. at every expansion boundary.
	Ctx context.Context

	// OnExpand is called when a state's successors are about to be
	// generated. depth is the number of actions from the start state.
	OnExpand func(s S, depth int)
}

// DefaultOptions returns Options with a background context and a no-op
// expansion hook.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:      context.Background(),
		OnExpand: func(S, int) {},
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback invoked at each expansion.
func WithOnExpand[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
