package render

import (
	"fmt"
	"strings"

	"gol-viz/pkg/life"
)

// Glyphs used by Text.
const (
	AliveGlyph = '█'
	DeadGlyph  = ' '
)

// Text renders g as one line per row.
func Text(g life.Grid) string {
	var b strings.Builder
	b.Grow(g.Rows() * (g.Cols()*3 + 1))
	for r, row := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			if v != 0 {
				b.WriteRune(AliveGlyph)
			} else {
				b.WriteRune(DeadGlyph)
			}
		}
	}
	return b.String()
}

// Status formats the one-line summary printed under a text frame.
func Status(generation, population int, rule life.Rule) string {
	return fmt.Sprintf("generation %d  alive %d  rule %s", generation, population, rule)
}
