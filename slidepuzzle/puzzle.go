package slidepuzzle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/kovaline/statesearch/search"
)

// blankTile is the index of the blank; its home is the top-left cell.
const blankTile = 0

// Puzzle is a rows×cols sliding-tile board. Tiles are numbered 0..rows·cols-1
// with 0 the blank; the board is solved when every tile sits at the cell
// matching its index in row-major order.
//
// Puzzle implements search.Problem[string, Move]: the state key is the
// board's string encoding, and Successors probes moves against a scratch
// copy of the position, restoring the current state afterwards.
type Puzzle struct {
	rows, cols int
	board      [][]int
	pos        [2]int // blank location (row, col)
	misplaced  int    // tiles away from home, maintained incrementally
	rng        *rand.Rand
}

// New returns a solved rows×cols puzzle. Returns ErrBadDims when either
// dimension is below 1 or the board has fewer than two cells.
func New(rows, cols int, opts ...Option) (*Puzzle, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDims, rows, cols)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	board := make([][]int, rows)
	num := 0
	for r := 0; r < rows; r++ {
		board[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			board[r][c] = num
			num++
		}
	}

	return &Puzzle{
		rows:  rows,
		cols:  cols,
		board: board,
		pos:   [2]int{0, 0},
		rng:   o.Rand,
	}, nil
}

// Dims returns the board's row and column counts.
func (p *Puzzle) Dims() (rows, cols int) { return p.rows, p.cols }

// home returns the solved-position cell of tile t.
func (p *Puzzle) home(t int) [2]int {
	return [2]int{t / p.cols, t % p.cols}
}

// State returns the current board encoded as rows of space-separated tile
// indices, each row terminated by a newline. The encoding is the puzzle's
// opaque state key for the search engine.
func (p *Puzzle) State() string {
	var b strings.Builder
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(p.board[r][c]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String renders the puzzle, same as State.
func (p *Puzzle) String() string { return p.State() }

// SetState replaces the board with the position encoded in state, which
// must be in the format produced by State for the same dimensions. The
// blank position and misplaced-tile count are recomputed. Returns
// ErrBadState for a malformed encoding.
func (p *Puzzle) SetState(state string) error {
	lines := strings.Split(strings.TrimSuffix(state, "\n"), "\n")
	if len(lines) != p.rows {
		return fmt.Errorf("%w: %d rows, want %d", ErrBadState, len(lines), p.rows)
	}

	seen := make([]bool, p.rows*p.cols)
	board := make([][]int, p.rows)
	var pos [2]int
	misplaced := 0
	place := 0
	for r, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != p.cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadState, r, len(fields), p.cols)
		}
		board[r] = make([]int, p.cols)
		for c, f := range fields {
			tile, err := strconv.Atoi(f)
			if err != nil || tile < 0 || tile >= p.rows*p.cols {
				return fmt.Errorf("%w: %q is not a valid tile index", ErrBadState, f)
			}
			if seen[tile] {
				return fmt.Errorf("%w: tile %d appears twice", ErrBadState, tile)
			}
			seen[tile] = true
			board[r][c] = tile
			if tile == blankTile {
				pos = [2]int{r, c}
			}
			if tile != place {
				misplaced++
			}
			place++
		}
	}

	p.board = board
	p.pos = pos
	p.misplaced = misplaced

	return nil
}

// Move slides the blank one cell in direction m and returns the step cost.
// All legal moves cost 1. Returns ErrBadMove for an unknown direction and
// ErrIllegalMove when the blank would leave the board.
func (p *Puzzle) Move(m Move) (float64, error) {
	if m != Up && m != Down && m != Left && m != Right {
		return 0, fmt.Errorf("%w: %+v", ErrBadMove, m)
	}
	next := [2]int{p.pos[0] + m.dr, p.pos[1] + m.dc}
	if next[0] < 0 || next[0] >= p.rows || next[1] < 0 || next[1] >= p.cols {
		return 0, fmt.Errorf("%w: blank at (%d,%d), direction %s", ErrIllegalMove, p.pos[0], p.pos[1], m)
	}

	tile := p.board[next[0]][next[1]]

	// Incremental misplaced bookkeeping: only the blank and the swapped
	// tile can change correctness.
	if p.pos == p.home(blankTile) {
		p.misplaced++
	}
	if next == p.home(blankTile) {
		p.misplaced--
	}
	if p.home(tile) == next {
		p.misplaced++
	}
	if p.home(tile) == p.pos {
		p.misplaced--
	}

	p.board[p.pos[0]][p.pos[1]] = tile
	p.board[next[0]][next[1]] = blankTile
	p.pos = next

	return 1, nil
}

// LegalMoves returns the directions the blank can slide from the current
// position, probed in the order Up, Down, Left, Right.
func (p *Puzzle) LegalMoves() []Move {
	moves := make([]Move, 0, 4)
	if p.pos[0] > 0 {
		moves = append(moves, Up)
	}
	if p.pos[0] < p.rows-1 {
		moves = append(moves, Down)
	}
	if p.pos[1] > 0 {
		moves = append(moves, Left)
	}
	if p.pos[1] < p.cols-1 {
		moves = append(moves, Right)
	}

	return moves
}

// Solved reports whether every tile sits at its home cell.
func (p *Puzzle) Solved() bool { return p.misplaced == 0 }

// Successors returns the states reachable from the given state key in one
// move. The puzzle's current position is saved, each legal move is probed
// against the given state, and the current position is restored before
// returning.
func (p *Puzzle) Successors(state string) ([]search.Successor[string, Move], error) {
	current := p.State()
	if err := p.SetState(state); err != nil {
		return nil, err
	}

	moves := p.LegalMoves()
	out := make([]search.Successor[string, Move], 0, len(moves))
	for _, m := range moves {
		cost, err := p.Move(m)
		if err != nil {
			return nil, err // unreachable for moves LegalMoves produced
		}
		out = append(out, search.Successor[string, Move]{
			State:  p.State(),
			Action: m,
			Cost:   cost,
			Goal:   p.Solved(),
		})
		if err = p.SetState(state); err != nil {
			return nil, err
		}
	}

	if err := p.SetState(current); err != nil {
		return nil, err
	}

	return out, nil
}
