package life

// Grid stores cell states in row-major order. Every value is 0 (dead) or
// 1 (alive) and every row has the same length.
type Grid [][]uint8

// NewGrid allocates an all-dead grid backed by a single contiguous slice.
func NewGrid(rows, cols int) Grid {
	data := make([]uint8, rows*cols)
	g := make(Grid, rows)
	for r := range g {
		g[r] = data[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the length of the first row, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy that shares no memory with g.
func (g Grid) Clone() Grid {
	out := NewGrid(g.Rows(), g.Cols())
	for r := range g {
		copy(out[r], g[r])
	}
	return out
}

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			n += int(v)
		}
	}
	return n
}

// Equal reports whether both grids have identical dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.Rows() != o.Rows() || g.Cols() != o.Cols() {
		return false
	}
	for r := range g {
		for c := range g[r] {
			if g[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

func (g Grid) clear() {
	for _, row := range g {
		for c := range row {
			row[c] = 0
		}
	}
}
