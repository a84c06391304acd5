package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kovaline/statesearch/search"
)

// TestNilProblem verifies every strategy rejects a nil problem.
func TestNilProblem(t *testing.T) {
	if _, err := search.BreadthFirst[string, string](nil); !errors.Is(err, search.ErrNilProblem) {
		t.Errorf("breadth-first: want ErrNilProblem, got %v", err)
	}
	if _, err := search.DepthFirst[string, string](nil); !errors.Is(err, search.ErrNilProblem) {
		t.Errorf("depth-first: want ErrNilProblem, got %v", err)
	}
	if _, err := search.DepthLimited[string, string](nil, 3); !errors.Is(err, search.ErrNilProblem) {
		t.Errorf("depth-limited: want ErrNilProblem, got %v", err)
	}
	if _, err := search.IterativeDeepening[string, string](nil, 3); !errors.Is(err, search.ErrNilProblem) {
		t.Errorf("iterative-deepening: want ErrNilProblem, got %v", err)
	}
	if _, err := search.AStar[string, string](nil, search.Zero[string]()); !errors.Is(err, search.ErrNilProblem) {
		t.Errorf("astar: want ErrNilProblem, got %v", err)
	}
}

// TestBadDepthLimit rejects bounds below 1.
func TestBadDepthLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		if _, err := search.DepthLimited[string, string](lineGraph(), limit); !errors.Is(err, search.ErrBadDepthLimit) {
			t.Errorf("depth-limited(%d): want ErrBadDepthLimit, got %v", limit, err)
		}
		if _, err := search.IterativeDeepening[string, string](lineGraph(), limit); !errors.Is(err, search.ErrBadDepthLimit) {
			t.Errorf("iterative-deepening(%d): want ErrBadDepthLimit, got %v", limit, err)
		}
	}
}

// TestNilHeuristic rejects AStar without a heuristic.
func TestNilHeuristic(t *testing.T) {
	if _, err := search.AStar[string, string](lineGraph(), nil); !errors.Is(err, search.ErrNilHeuristic) {
		t.Errorf("want ErrNilHeuristic, got %v", err)
	}
}

// TestNegativeCost surfaces a malformed Problem response unmasked.
func TestNegativeCost(t *testing.T) {
	g := newGraphProblem("A", []string{"C"}, map[string][]edge{
		"A": {{"B", "B", -1}},
		"B": {{"C", "C", 1}},
	})
	_, err := search.BreadthFirst[string, string](g)
	require.ErrorIs(t, err, search.ErrNegativeCost)
}

// TestSuccessorsFailure wraps the collaborator's error.
func TestSuccessorsFailure(t *testing.T) {
	b := &brokenSuccessors{lineGraph()}
	_, err := search.DepthFirst[string, string](b)
	require.ErrorIs(t, err, search.ErrSuccessors)
	require.ErrorContains(t, err, "backend unavailable")
}

// TestRewindFailure surfaces SetState errors from iterative deepening.
func TestRewindFailure(t *testing.T) {
	f := &failingRewind{lineGraph()}
	_, err := search.IterativeDeepening[string, string](f, 3)
	require.ErrorIs(t, err, search.ErrSetState)
}

// TestCancellation aborts each strategy with the context's error before any
// node is removed.
func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs := map[string]func() (*search.Result[string], error){
		"breadth-first": func() (*search.Result[string], error) {
			return search.BreadthFirst[string, string](lineGraph(), search.WithContext[string](ctx))
		},
		"depth-first": func() (*search.Result[string], error) {
			return search.DepthFirst[string, string](lineGraph(), search.WithContext[string](ctx))
		},
		"depth-limited": func() (*search.Result[string], error) {
			return search.DepthLimited[string, string](lineGraph(), 3, search.WithContext[string](ctx))
		},
		"iterative-deepening": func() (*search.Result[string], error) {
			return search.IterativeDeepening[string, string](lineGraph(), 3, search.WithContext[string](ctx))
		},
		"astar": func() (*search.Result[string], error) {
			return search.AStar[string, string](lineGraph(), search.Zero[string](), search.WithContext[string](ctx))
		},
	}
	for name, run := range runs {
		if _, err := run(); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: want context.Canceled, got %v", name, err)
		}
	}
}
