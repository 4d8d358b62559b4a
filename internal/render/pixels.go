package render

import (
	"image/color"

	"gol-viz/pkg/life"
)

// fillGridRGBA converts a binary grid into row-major RGBA pixels in buf,
// one pixel per cell. buf must hold at least 4*rows*cols bytes.
func fillGridRGBA(buf []byte, g life.Grid, on, off color.Color) {
	onPx := rgba(on)
	offPx := rgba(off)
	cols := g.Cols()
	for r, row := range g {
		for c, v := range row {
			px := offPx
			if v != 0 {
				px = onPx
			}
			base := (r*cols + c) * 4
			copy(buf[base:base+4], px[:])
		}
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
