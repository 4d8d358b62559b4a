//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"gol-viz/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads from and adjusts.
type Source interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

var keyHelp = []string{
	"space  play/pause",
	"n      step",
	"r      randomize",
	"c      clear",
	"1-9    pattern (twice: random)",
	"esc    cancel pattern / quit",
}

// HUD renders the stats and control panel to the right of the board.
type HUD struct {
	src          Source
	width        int
	panel        *ebiten.Image
	pixel        *ebiten.Image
	snapshot     core.ParameterSnapshot
	controls     []hudControlState
	panelOffsetX int
}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	for _, ctrl := range src.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles button presses. It
// reports whether the click landed on the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.layout()
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, titleColor)
	y += lineGap
	for _, key := range []string{"generation", "population", "rule", "state", "pattern"} {
		p, ok := h.snapshot.Lookup(key)
		if !ok {
			continue
		}
		y += lineGap
		text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, textColor)
	}

	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}

	y = h.helpTop()
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += lineGap
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) layout() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func (h *HUD) helpTop() int {
	return controlsTop + len(h.controls)*lineHeight + lineHeight
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.number = parsed
		state.hasValue = true
		state.value = formatValue(state.control, parsed)
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.adjust(state, -1)
			break
		}
		if pointInRect(px, my, state.plusRect) {
			h.adjust(state, 1)
			break
		}
	}
	return true
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.number + float64(direction)*step)
	if math.Abs(target-state.number) < 1e-9 {
		return
	}
	var ok bool
	switch state.control.Type {
	case core.ParamTypeInt:
		ok = h.src.SetIntParameter(state.control.Key, int(math.Round(target)))
	case core.ParamTypeFloat:
		ok = h.src.SetFloatParameter(state.control.Key, target)
	}
	if ok {
		state.number = target
		state.value = formatValue(state.control, target)
	}
}

func (h *HUD) drawControl(state *hudControlState) {
	face := basicfont.Face7x13
	y := state.top + labelBaseline
	text.Draw(h.panel, state.control.Label, face, panelPadding, y, textColor)
	valueColor := textColor
	if !state.hasValue {
		valueColor = dimColor
	}
	bounds := text.BoundString(face, state.value)
	text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-bounds.Dx(), y, valueColor)

	lo := state.control.Clamp(state.number-state.control.Step) < state.number
	hi := state.control.Clamp(state.number+state.control.Step) > state.number
	h.drawButton(state.minusRect, "-", state.hasValue && lo)
	h.drawButton(state.plusRect, "+", state.hasValue && hi)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	number   float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	lineGap        = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 7*lineGap
)
