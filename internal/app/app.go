//go:build ebiten

package app

import (
	"image/color"
	"log"

	"gol-viz/internal/driver"
	"gol-viz/internal/render"
	"gol-viz/internal/ui"
	"gol-viz/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the side panel in pixels.
const HUDWidth = 240

var patternKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a simulation driver to the ebiten.Game interface.
type Game struct {
	drv      *driver.Driver
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	patterns []string

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided driver.
func New(drv *driver.Driver, scale int) *Game {
	e := drv.Engine()
	return &Game{
		drv:      drv,
		painter:  render.NewGridPainter(e.Rows(), e.Cols()),
		hud:      ui.NewHUD(drv, HUDWidth),
		overlay:  ui.NewOverlay(scale),
		patterns: life.Names(),
		onColor:  color.RGBA{R: 17, G: 17, B: 17, A: 255},
		offColor: color.RGBA{R: 238, G: 238, B: 238, A: 255},
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.drv.Selected() == "" {
			return ebiten.Termination
		}
		g.drv.CancelSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.drv.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.drv.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.drv.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.drv.Clear()
	}
	for i, key := range patternKeys {
		if i < len(g.patterns) && inpututil.IsKeyJustPressed(key) {
			selectPattern(g.drv, g.patterns[i], log.Default())
		}
	}

	boardW := g.drv.Engine().Cols() * g.scale
	onPanel := g.hud.Update(boardW)
	if !onPanel && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if r, c, ok := g.cursorCell(); ok {
			g.drv.Click(r, c)
		}
	}

	g.drv.Tick()
	return nil
}

func (g *Game) cursorCell() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	e := g.drv.Engine()
	if mx < 0 || my < 0 {
		return 0, 0, false
	}
	r, c := my/g.scale, mx/g.scale
	if r >= e.Rows() || c >= e.Cols() {
		return 0, 0, false
	}
	return r, c, true
}

// Draw renders the board, the pattern preview and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	e := g.drv.Engine()
	g.painter.Blit(screen, e.Grid(), g.onColor, g.offColor, g.scale)
	if r, c, ok := g.cursorCell(); ok {
		g.overlay.Draw(screen, g.drv.Selected(), e.Rows(), e.Cols(), r, c)
	}
	g.hud.Draw(screen, e.Cols()*g.scale, e.Rows()*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	e := g.drv.Engine()
	return e.Cols()*g.scale + g.hud.Width(), e.Rows() * g.scale
}
