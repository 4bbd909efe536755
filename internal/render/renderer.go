//go:build ebiten

package render

import (
	"image/color"

	"active-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an RGBA image of the board in sync with flip events.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	on, off color.Color
	stale   bool

	gaps      *ebiten.Image
	gapsScale int
}

// minGapScale is the smallest cell size that still gets a 1px gap.
const minGapScale = 3

// NewGridPainter allocates a painter for a grid of w columns and h rows.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), on: on, off: off}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Sync repaints the whole buffer from cells.
func (gp *GridPainter) Sync(cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.on, gp.off)
	gp.stale = true
}

// Paint applies a single flip. It is meant to be registered with
// life.Engine.Subscribe.
func (gp *GridPainter) Paint(f life.Flip) {
	col := gp.off
	if f.State == 1 {
		col = gp.on
	}
	setCellRGBA(gp.buf, f.Row*gp.w+f.Col, col)
	gp.stale = true
}

// Draw uploads pending changes and draws the board scaled onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if gp.stale {
		gp.img.ReplacePixels(gp.buf)
		gp.stale = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	if scale < minGapScale {
		return
	}
	if gp.gaps == nil || gp.gapsScale != scale {
		gp.gaps = ebiten.NewImage(gp.w*scale, gp.h*scale)
		gp.gaps.ReplacePixels(gapMaskRGBA(gp.w, gp.h, scale, GapColor))
		gp.gapsScale = scale
	}
	dst.DrawImage(gp.gaps, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
