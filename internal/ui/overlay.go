//go:build ebiten

package ui

import (
	"image/color"

	"gol-viz/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay previews where an armed pattern would land under the cursor.
type Overlay struct {
	scale int
	pixel *ebiten.Image
	tint  color.NRGBA
}

// NewOverlay constructs an overlay for a board drawn at scale pixels per cell.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale, tint: color.NRGBA{R: 80, G: 200, B: 120, A: 140}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw shades the stencil of the named pattern centred on cell (r, c) of a
// rows x cols board. Nothing is drawn when name is empty or unknown.
func (o *Overlay) Draw(screen *ebiten.Image, name string, rows, cols, r, c int) {
	if name == "" {
		return
	}
	p, err := life.Lookup(name)
	if err != nil {
		return
	}
	r0, c0 := p.Clamp(rows, cols, r-p.Rows()/2, c-p.Cols()/2)
	s := float64(o.scale)
	for i, row := range p.Cells {
		for j, alive := range row {
			if !alive || r0+i >= rows || c0+j >= cols {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(s, s)
			op.GeoM.Translate(float64(c0+j)*s, float64(r0+i)*s)
			op.ColorScale.ScaleWithColor(o.tint)
			screen.DrawImage(o.pixel, op)
		}
	}
}
