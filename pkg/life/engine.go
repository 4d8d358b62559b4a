package life

import (
	"errors"

	"gol-viz/pkg/core"
)

// ErrEmptyGrid is returned by SetGrid when the replacement has no cells.
var ErrEmptyGrid = errors.New("life: grid has no rows or columns")

// Config controls engine dimensions and seeding.
type Config struct {
	Rows int
	Cols int

	// Seed drives Randomize. Zero seeds from the wall clock.
	Seed int64
}

// DefaultConfig returns the standard 50x80 board.
func DefaultConfig() Config {
	return Config{Rows: 50, Cols: 80}
}

// Result describes the board after a Step.
type Result struct {
	Grid       Grid
	Generation int
	Population int
}

// Engine implements Conway's Game of Life on a bounded grid. Cells outside
// the board count as dead; edges do not wrap.
type Engine struct {
	rows, cols int
	generation int
	cur        Grid
	nxt        Grid
	rng        *core.RNG
}

// New returns an engine with the provided dimensions and a clock seed.
func New(rows, cols int) *Engine {
	return NewWithConfig(Config{Rows: rows, Cols: cols})
}

// NewWithConfig returns an all-dead engine configured from cfg. Non-positive
// dimensions are coerced to 1.
func NewWithConfig(cfg Config) *Engine {
	rows, cols := clampDims(cfg.Rows, cfg.Cols)
	return &Engine{
		rows: rows,
		cols: cols,
		cur:  NewGrid(rows, cols),
		nxt:  NewGrid(rows, cols),
		rng:  core.NewRNG(cfg.Seed),
	}
}

func clampDims(rows, cols int) (int, int) {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return rows, cols
}

// Rows returns the current row count.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the current column count.
func (e *Engine) Cols() int { return e.cols }

// Generation returns the number of steps since the last reset.
func (e *Engine) Generation() int { return e.generation }

// Population counts live cells on the current board.
func (e *Engine) Population() int { return e.cur.Population() }

func (e *Engine) inBounds(r, c int) bool {
	return r >= 0 && r < e.rows && c >= 0 && c < e.cols
}

// Alive reports whether (r, c) is a live cell. Out-of-range cells are dead.
func (e *Engine) Alive(r, c int) bool {
	return e.inBounds(r, c) && e.cur[r][c] == 1
}

// Set writes a single cell and reports whether the coordinate was in range.
func (e *Engine) Set(r, c int, alive bool) bool {
	if !e.inBounds(r, c) {
		return false
	}
	e.cur[r][c] = 0
	if alive {
		e.cur[r][c] = 1
	}
	return true
}

// Randomize sets each cell alive with probability p and resets the
// generation counter.
func (e *Engine) Randomize(p float64) {
	e.generation = 0
	if p <= 0 {
		e.cur.clear()
		return
	}
	src := e.rng.Source()
	for _, row := range e.cur {
		core.FillBernoulli(src, row, p)
	}
}

// NeighborCount sums the live cells in the Moore neighbourhood of (r, c).
// Neighbours outside the board contribute nothing.
func (e *Engine) NeighborCount(r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		rr := r + dr
		if rr < 0 || rr >= e.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			cc := c + dc
			if (dr == 0 && dc == 0) || cc < 0 || cc >= e.cols {
				continue
			}
			n += int(e.cur[rr][cc])
		}
	}
	return n
}

// Step advances the board by one generation under rule. Every cell is
// computed from the previous board.
func (e *Engine) Step(rule Rule) Result {
	alive := 0
	for r := 0; r < e.rows; r++ {
		for c := 0; c < e.cols; c++ {
			n := e.NeighborCount(r, c)
			var next uint8
			if e.cur[r][c] == 1 {
				if rule.Survive.Has(n) {
					next = 1
				}
			} else if rule.Birth.Has(n) {
				next = 1
			}
			e.nxt[r][c] = next
			alive += int(next)
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
	return Result{Grid: e.cur.Clone(), Generation: e.generation, Population: alive}
}

// ToggleCell flips (r, c). Out-of-range coordinates are ignored.
func (e *Engine) ToggleCell(r, c int) {
	if !e.inBounds(r, c) {
		return
	}
	e.cur[r][c] ^= 1
}

// Grid returns a copy of the current board.
func (e *Engine) Grid() Grid { return e.cur.Clone() }

// SetGrid replaces the board with a copy of g, coercing nonzero values to 1.
// The width is taken from the first row; shorter rows are padded with dead
// cells and longer rows are truncated. The generation is left alone.
func (e *Engine) SetGrid(g [][]uint8) error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	rows, cols := len(g), len(g[0])
	cur := NewGrid(rows, cols)
	for r, src := range g {
		for c := 0; c < cols && c < len(src); c++ {
			if src[c] != 0 {
				cur[r][c] = 1
			}
		}
	}
	e.rows, e.cols = rows, cols
	e.cur = cur
	e.nxt = NewGrid(rows, cols)
	return nil
}

// Resize changes the board dimensions, keeping the overlapping top-left
// region. Non-positive dimensions are coerced to 1.
func (e *Engine) Resize(rows, cols int) {
	rows, cols = clampDims(rows, cols)
	cur := NewGrid(rows, cols)
	keepRows := min(rows, e.rows)
	keepCols := min(cols, e.cols)
	for r := 0; r < keepRows; r++ {
		copy(cur[r][:keepCols], e.cur[r][:keepCols])
	}
	e.rows, e.cols = rows, cols
	e.cur = cur
	e.nxt = NewGrid(rows, cols)
}
