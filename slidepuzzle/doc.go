// Package slidepuzzle implements the classic sliding-tile puzzle as a
// search.Problem, with scrambling to an exact solution depth and two
// admissible heuristics.
//
// # What
//
//   - A rows×cols board of tiles 0..rows·cols-1; tile 0 is the blank and
//     the board is solved when tiles sit in row-major order.
//   - Moves are blank-relative directions (Up, Down, Left, Right), each of
//     unit cost; illegal directions are rejected, never wrapped.
//   - State keys are the board's newline-terminated string encoding —
//     opaque to the engine, round-trippable through SetState.
//   - Scramble produces positions whose optimal solutions take exactly the
//     requested number of moves, by sampling a breadth-first frontier.
//   - Manhattan and MisplacedTiles heuristics plug into search.AStar.
//
// # Why
//
//	The puzzle is the engine's reference workload: a finite, undirected,
//	unit-cost state graph whose optimal solution lengths are known by
//	construction, which makes strategy guarantees directly testable.
//
// # Usage
//
//	p, err := slidepuzzle.New(3, 3, slidepuzzle.WithRand(rng))
//	starts, err := p.Scramble(4, 1) // one state exactly 4 moves from solved
//	err = p.SetState(starts[0])
//	res, err := search.AStar[string, slidepuzzle.Move](p, p.Manhattan())
//	// res.Path holds 4 moves; res.Cost == 4
//
// # Errors
//
//   - ErrBadDims        rows/cols below 1, or a 1×1 board.
//   - ErrBadState       malformed state string (shape, range, duplicates).
//   - ErrBadMove        direction outside Up/Down/Left/Right.
//   - ErrIllegalMove    blank pushed off the board.
//   - ErrScrambleDepth  reachable space exhausted before the requested depth.
package slidepuzzle
