//go:build ebiten

package render

import (
	"image/color"

	"gol-viz/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a grid into an RGBA image, one pixel per cell, and
// draws it scaled.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{}
	gp.ensure(rows, cols)
	return gp
}

func (gp *GridPainter) ensure(rows, cols int) {
	if gp.img != nil && gp.rows == rows && gp.cols == cols {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.rows, gp.cols = rows, cols
	gp.buf = make([]byte, 4*rows*cols)
	gp.img = ebiten.NewImage(cols, rows)
}

// Blit uploads g into the painter image and draws it at the given scale.
// The image is reallocated when the grid has been resized.
func (gp *GridPainter) Blit(dst *ebiten.Image, g life.Grid, on, off color.Color, scale int) {
	if g.Rows() == 0 || g.Cols() == 0 {
		return
	}
	gp.ensure(g.Rows(), g.Cols())
	fillGridRGBA(gp.buf, g, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter is sized for.
func (gp *GridPainter) Size() (int, int) { return gp.rows, gp.cols }
