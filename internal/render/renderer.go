//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from classified cell data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	scratch []uint8
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{
		w:       w,
		h:       h,
		buf:     make([]byte, 4*w*h),
		scratch: make([]uint8, w*h),
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the cells through the palette and draws the image scaled.
// Cells arrive column-major, matching the simulation's map layout.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	transpose(gp.scratch, cells, gp.w, gp.h)
	fillPaletteRGBA(gp.buf, gp.scratch, palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
