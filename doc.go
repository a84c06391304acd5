// Package statesearch is a toolkit for searching discrete state spaces —
// five classic traversal strategies over any problem you can describe as
// states, actions and successors.
//
// 🚀 What is statesearch?
//
//	A small, generic library that brings together:
//		• Traversals: breadth-first, depth-first, depth-limited, iterative deepening
//		• Heuristic search: A* with injectable, admissible heuristics
//		• A priority queue with deterministic tie-breaking
//		• Ready-made problems: sliding-tile puzzles and grid mazes
//
// ✨ Why choose statesearch?
//
//   - Problem-agnostic – the engine never inspects your states; it only
//     compares them. Plug in a puzzle, a maze, or any discrete graph.
//   - Honest results – every search returns its path, its total cost, and
//     the effort it spent (expansions, peak fringe size). No singletons.
//   - Cancellable – pass a context; the engine checks it at every expansion.
//   - Pure Go – no cgo, generics-based, safe for concurrent calls.
//
// Everything is organized under four subpackages:
//
//	search/      — the five strategies and the Problem/Heuristic contracts
//	pqueue/      — generic min-priority queue used by A*
//	slidepuzzle/ — sliding-tile puzzle Problem with Manhattan heuristic
//	maze/        — grid-maze Problem with 4/8-connectivity
//
// Quick ASCII example — a 2×2 puzzle one move from solved:
//
//	    0 1        1 0
//	    2 3   ←W─  2 3
//
//	breadth-first, depth-first, iterative deepening and A* all find the
//	single-move solution; they differ only in the effort they report.
//
// Dive into each package's doc.go for tutorials, complexity notes and the
// cmd/slidesolve binary for a ready-to-run benchmark harness.
//
//	go get github.com/kovaline/statesearch
package statesearch
