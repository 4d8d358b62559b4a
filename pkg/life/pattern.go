package life

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownPattern is returned when a pattern name is not registered.
	ErrUnknownPattern = errors.New("life: unknown pattern")
	// ErrInvalidPattern is returned for malformed stencil rows.
	ErrInvalidPattern = errors.New("life: invalid pattern")
)

// Pattern is a named rectangular stencil of live and dead cells.
type Pattern struct {
	Name  string
	Cells [][]bool
}

// ParsePattern builds a stencil from rows where 'O' marks a live cell and '.'
// a dead one. All rows must have the same non-zero length.
func ParsePattern(name string, rows ...string) (Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, fmt.Errorf("%w: %s is empty", ErrInvalidPattern, name)
	}
	width := len(rows[0])
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		if len(row) != width {
			return Pattern{}, fmt.Errorf("%w: %s row %d has width %d, want %d", ErrInvalidPattern, name, r, len(row), width)
		}
		cells[r] = make([]bool, width)
		for c, ch := range []byte(row) {
			switch ch {
			case 'O':
				cells[r][c] = true
			case '.':
			default:
				return Pattern{}, fmt.Errorf("%w: %s has unexpected %q", ErrInvalidPattern, name, ch)
			}
		}
	}
	return Pattern{Name: name, Cells: cells}, nil
}

func mustPattern(name string, rows ...string) Pattern {
	p, err := ParsePattern(name, rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// Rows returns the stencil height.
func (p Pattern) Rows() int { return len(p.Cells) }

// Cols returns the stencil width.
func (p Pattern) Cols() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells[0])
}

// Place stamps the stencil with its top-left corner at (r, c), overwriting
// the covered cells. The origin is clamped so the stencil stays on the board
// where it fits. The applied origin is returned.
func (p Pattern) Place(e *Engine, r, c int) (int, int) {
	r, c = p.Clamp(e.rows, e.cols, r, c)
	for i, row := range p.Cells {
		for j, alive := range row {
			e.Set(r+i, c+j, alive)
		}
	}
	return r, c
}

// Clamp limits a top-left origin so the stencil stays on a rows x cols
// board. Stencils larger than the board are pinned to the top-left corner.
func (p Pattern) Clamp(rows, cols, r, c int) (int, int) {
	return clamp(r, 0, max(0, rows-p.Rows())), clamp(c, 0, max(0, cols-p.Cols()))
}

// PlaceCentered stamps the stencil centred on (r, c).
func (p Pattern) PlaceCentered(e *Engine, r, c int) (int, int) {
	return p.Place(e, r-p.Rows()/2, c-p.Cols()/2)
}

// PlaceRandom stamps the stencil at an origin chosen uniformly among the
// positions where it fits entirely.
func (p Pattern) PlaceRandom(e *Engine) (int, int) {
	r := e.rng.IntN(max(1, e.rows-p.Rows()+1))
	c := e.rng.IntN(max(1, e.cols-p.Cols()+1))
	return p.Place(e, r, c)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name, replacing any previous entry.
func Register(p Pattern) {
	if p.Name == "" || p.Rows() == 0 {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the registered pattern called name.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Names lists registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(mustPattern("glider",
		".O.",
		"..O",
		"OOO",
	))
	Register(mustPattern("small-exploder",
		".O.",
		"OOO",
		"O.O",
		".O.",
	))
	Register(mustPattern("pulsar",
		"..OOO....OOO...",
		"...............",
		"O....O...O....O",
		"O....O...O....O",
		"O....O...O....O",
		"..OOO....OOO...",
		"...............",
		"...............",
		"..OOO....OOO...",
		"O....O...O....O",
		"O....O...O....O",
		"O....O...O....O",
		"...............",
		"..OOO....OOO...",
		"...............",
	))
	Register(mustPattern("blinker", "OOO"))
	Register(mustPattern("block",
		"OO",
		"OO",
	))
	Register(mustPattern("beacon",
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	))
	Register(mustPattern("toad",
		".OOO",
		"OOO.",
	))
	Register(mustPattern("lwss",
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	))
	Register(mustPattern("r-pentomino",
		".OO",
		"OO.",
		".O.",
	))
}
