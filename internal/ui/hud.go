//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"
	"unicode"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimTextColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

// HUD renders the status readout and parameter panel to the right of the
// simulation view.
type HUD struct {
	sim    core.Sim
	status core.StatusProvider
	width  int

	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image

	controls *controlPanel
	title    string
	lines    []string
	offsetX  int
}

// NewHUD constructs a HUD for sim. A width of zero disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	h.status, _ = sim.(core.StatusProvider)
	h.controls = newControlPanel(sim)
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached status and parameter values and handles clicks
// on the +/- buttons. It reports whether the click was consumed by the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.offsetX = panelOffsetX
	if h.status != nil {
		h.lines = h.status.StatusLines()
	}
	h.controls.layout(h.width, h.controlsTop())
	if provider, ok := h.sim.(parameterProvider); ok {
		h.controls.refresh(provider.Parameters())
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return false
	}
	if i, dir, ok := h.controls.hit(mx-h.offsetX, my); ok {
		h.controls.adjust(i, dir)
	}
	return true
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)
	h.drawStatus()
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) controlsTop() int {
	return panelPadding + len(h.lines)*statusSpacing + headerBaseline + 14
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + statusSpacing/2 + 4
	for _, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
		y += statusSpacing
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + len(h.lines)*statusSpacing + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, headerColor)
	if len(h.controls.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+lineHeight, dimTextColor)
		return
	}
	for i := range h.controls.controls {
		state := &h.controls.controls[i]
		baseline := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, textColor)

		valueColor := textColor
		if !state.hasValue {
			valueColor = dimTextColor
		}
		width := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-width, baseline, valueColor)

		h.drawButton(state.minusRect, "-", h.controls.canAdjust(i, -1))
		h.drawButton(state.plusRect, "+", h.controls.canAdjust(i, 1))
	}
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

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := []rune(sim.Name())
	name[0] = unicode.ToUpper(name[0])
	return strings.TrimSpace(string(name)) + " Controls"
}
