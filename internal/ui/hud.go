//go:build ebiten

package ui

import (
	"image/color"

	"active-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 18
)

var (
	panelColor = color.RGBA{R: 0x2c, G: 0x33, B: 0x3a, A: 0xff}
	labelColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders status lines in a panel to the right of the board.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD with the given panel width. A width of zero
// disables it.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints stats into the panel and places it at x on dst.
func (h *HUD) Draw(dst *ebiten.Image, x int, stats []core.Stat) {
	if h == nil || h.width == 0 {
		return
	}
	height := dst.Bounds().Dy()
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	valueX := h.width / 2
	for _, s := range stats {
		text.Draw(h.panel, s.Label, face, panelPadding, y, labelColor)
		text.Draw(h.panel, s.Value, face, valueX, y, valueColor)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), 0)
	dst.DrawImage(h.panel, op)
}
