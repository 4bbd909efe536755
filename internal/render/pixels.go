package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	for i, c := range cells {
		if c != 0 {
			setCellRGBA(buf, i, on)
			continue
		}
		setCellRGBA(buf, i, off)
	}
}

// setCellRGBA writes a single pixel for the cell at linear index i.
func setCellRGBA(buf []byte, i int, col color.Color) {
	r, g, b, a := col.RGBA()
	base := i * 4
	buf[base+0] = uint8(r >> 8)
	buf[base+1] = uint8(g >> 8)
	buf[base+2] = uint8(b >> 8)
	buf[base+3] = uint8(a >> 8)
}

// gapMaskRGBA builds a w*scale x h*scale overlay that paints the last pixel
// row and column of every cell with col and leaves the rest transparent.
func gapMaskRGBA(w, h, scale int, col color.Color) []byte {
	pw, ph := w*scale, h*scale
	buf := make([]byte, 4*pw*ph)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if x%scale == scale-1 || y%scale == scale-1 {
				setCellRGBA(buf, y*pw+x, col)
			}
		}
	}
	return buf
}

// Board colors: slate for live cells, pale grey for dead ones. Gaps
// between cells are white.
var (
	AliveColor = color.RGBA{R: 0x5d, G: 0x6d, B: 0x7e, A: 0xff}
	DeadColor  = color.RGBA{R: 0xeb, G: 0xed, B: 0xef, A: 0xff}
	GapColor   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
