package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// When the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// transpose copies column-major cells into a row-major scratch buffer so
// the painter can upload them as an image.
func transpose(dst, src []uint8, w, h int) {
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			dst[y*w+x] = src[x*h+y]
		}
	}
}
