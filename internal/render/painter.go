//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// NetPainter uploads a rendered net image to the GPU and draws it scaled.
type NetPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewNetPainter allocates a painter for a w*h net image.
func NewNetPainter(w, h int) *NetPainter {
	return &NetPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads src into the painter image and draws it onto dst.
func (np *NetPainter) Blit(dst *ebiten.Image, src *image.RGBA, scale int) {
	if src == nil || src.Rect.Dx() != np.w || src.Rect.Dy() != np.h {
		return
	}
	np.img.WritePixels(src.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(np.img, op)
}

// Size returns the dimensions of the underlying image.
func (np *NetPainter) Size() (int, int) { return np.w, np.h }
