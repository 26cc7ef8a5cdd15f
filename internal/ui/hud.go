//go:build ebiten

package ui

import (
	"image/color"

	"gridcast/internal/core"
	"gridcast/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent text panel in the top-left corner of the view.
type HUD struct {
	params  core.ParameterSnapshot
	visible bool

	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD listing the given settings snapshot.
func NewHUD(params core.ParameterSnapshot, visible bool) *HUD {
	return &HUD{params: params, visible: visible}
}

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update toggles the panel on H.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the panel for the given state.
func (h *HUD) Draw(screen *ebiten.Image, s game.State) {
	if !h.Visible() {
		return
	}
	lines := PanelLines(s, ebiten.ActualFPS(), h.params)
	height := panelPadding*2 + len(lines)*lineHeight
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(panelWidth, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	y := panelPadding + baseline
	for i, line := range lines {
		c := valueColor
		if i == 0 || (len(line) > 0 && line[0] == '[') {
			c = headerColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, c)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelMargin, panelMargin)
	screen.DrawImage(h.panel, op)
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelWidth   = 220
	panelPadding = 8
	panelMargin  = 6
	lineHeight   = 15
	baseline     = 11
)
