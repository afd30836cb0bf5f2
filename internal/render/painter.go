//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter owns an offscreen image sized to a sample grid and blits it
// scaled onto a destination.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w×h sample grid.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, w*h*4),
	}
}

// BlitBiomes paints biome ids shaded by elevation onto dst at the given
// integer scale.
func (p *GridPainter) BlitBiomes(dst *ebiten.Image, biomes []uint8, elevation []float64, scale int) {
	FillBiomeRGBA(p.buf, biomes, elevation)
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}
