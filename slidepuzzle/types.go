// Package slidepuzzle defines moves, options and sentinel errors for the
// sliding-tile puzzle problem.
package slidepuzzle

import (
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors for puzzle construction and manipulation.
var (
	// ErrBadDims indicates the requested board has fewer than one row or
	// column, or fewer than two cells in total (a 1×1 board has no moves).
	ErrBadDims = errors.New("slidepuzzle: board must have at least 1 row, 1 column and 2 cells")

	// ErrBadState indicates a state string that does not describe this
	// board: wrong shape, a tile index out of range, or a duplicate tile.
	ErrBadState = errors.New("slidepuzzle: invalid state string")

	// ErrBadMove indicates a direction that is not one of Up, Down, Left,
	// Right.
	ErrBadMove = errors.New("slidepuzzle: unrecognized move direction")

	// ErrIllegalMove indicates a move that would push the blank off the
	// board.
	ErrIllegalMove = errors.New("slidepuzzle: illegal move")

	// ErrScrambleDepth indicates the reachable state space ran out before
	// the requested scramble depth, or holds fewer states at that depth
	// than were requested.
	ErrScrambleDepth = errors.New("slidepuzzle: not enough states at requested scramble depth")
)

// Move is a blank-relative direction: the direction the blank tile slides.
// Moves are opaque to the search engine; it only accumulates them.
type Move struct {
	dr, dc int
}

// The four legal directions, in the order LegalMoves probes them.
var (
	Up    = Move{-1, 0}
	Down  = Move{1, 0}
	Left  = Move{0, -1}
	Right = Move{0, 1}
)

// String renders the move as a compass letter (the direction the blank
// travels): N, S, W or E.
func (m Move) String() string {
	switch m {
	case Up:
		return "N"
	case Down:
		return "S"
	case Left:
		return "W"
	case Right:
		return "E"
	}

	return "?"
}

// Options holds tunable parameters for puzzle construction.
type Options struct {
	// Rand is the randomness source used by Scramble's sampling.
	Rand *rand.Rand
}

// Option configures a Puzzle via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a time-seeded randomness source.
func DefaultOptions() Options {
	return Options{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand sets a custom randomness source, e.g. a fixed seed for
// reproducible scrambles.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
