package search_test

import (
	"errors"
	"fmt"

	"github.com/kovaline/statesearch/search"
)

// edge is one labeled, weighted transition in a test state graph.
type edge struct {
	to     string
	action string
	cost   float64
}

// graphProblem is a tiny explicit state graph implementing
// search.Problem[string, string]. Successor order follows edge declaration
// order, so traversals are fully deterministic.
type graphProblem struct {
	current string
	goals   map[string]bool
	edges   map[string][]edge
}

func newGraphProblem(start string, goals []string, edges map[string][]edge) *graphProblem {
	gs := make(map[string]bool, len(goals))
	for _, g := range goals {
		gs[g] = true
	}

	return &graphProblem{current: start, goals: gs, edges: edges}
}

func (g *graphProblem) State() string          { return g.current }
func (g *graphProblem) SetState(s string) error { g.current = s; return nil }
func (g *graphProblem) Solved() bool           { return g.goals[g.current] }

func (g *graphProblem) Successors(s string) ([]search.Successor[string, string], error) {
	out := make([]search.Successor[string, string], 0, len(g.edges[s]))
	for _, e := range g.edges[s] {
		out = append(out, search.Successor[string, string]{
			State:  e.to,
			Action: e.action,
			Cost:   e.cost,
			Goal:   g.goals[e.to],
		})
	}

	return out, nil
}

// replay applies an action path from a start state using the graph's own
// transition semantics and returns the final state and summed cost.
func (g *graphProblem) replay(start string, path []string) (string, float64, error) {
	cur, total := start, 0.0
	for _, a := range path {
		next := ""
		for _, e := range g.edges[cur] {
			if e.action == a {
				next = e.to
				total += e.cost
				break
			}
		}
		if next == "" {
			return "", 0, fmt.Errorf("no edge %q out of %q", a, cur)
		}
		cur = next
	}

	return cur, total, nil
}

// lineGraph is A→B→C→D with unit costs; D is the goal.
func lineGraph() *graphProblem {
	return newGraphProblem("A", []string{"D"}, map[string][]edge{
		"A": {{"B", "B", 1}},
		"B": {{"C", "C", 1}},
		"C": {{"D", "D", 1}},
	})
}

// twoRoutes offers a 4-hop and a 3-hop route from A to the goal K.
func twoRoutes() *graphProblem {
	return newGraphProblem("A", []string{"K"}, map[string][]edge{
		"A": {{"B", "B", 1}, {"E", "E", 1}},
		"B": {{"C", "C", 1}},
		"C": {{"D", "D", 1}},
		"D": {{"K", "K", 1}},
		"E": {{"F", "F", 1}},
		"F": {{"K", "K", 1}},
	})
}

// tollRoad has a 1-action path of cost 10 and a 3-action path of cost 3 to
// the goal D — fewest actions and cheapest cost disagree.
func tollRoad() *graphProblem {
	return newGraphProblem("A", []string{"D"}, map[string][]edge{
		"A": {{"D", "jump", 10}, {"B", "B", 1}},
		"B": {{"C", "C", 1}},
		"C": {{"D", "D", 1}},
	})
}

// deadEnd has no path from A to the goal Z.
func deadEnd() *graphProblem {
	return newGraphProblem("A", []string{"Z"}, map[string][]edge{
		"A": {{"B", "B", 1}},
		"B": {},
	})
}

// failingRewind wraps a graphProblem with a SetState that always errors.
type failingRewind struct{ *graphProblem }

func (f *failingRewind) SetState(string) error { return errors.New("rewind refused") }

// brokenSuccessors errors on successor generation for every state.
type brokenSuccessors struct{ *graphProblem }

func (b *brokenSuccessors) Successors(string) ([]search.Successor[string, string], error) {
	return nil, errors.New("backend unavailable")
}
