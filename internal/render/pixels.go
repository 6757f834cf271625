package render

import (
	"image"
	"image/color"

	"cube-planet/internal/cube"
)

// Background fills net pixels that belong to no face.
var Background = color.RGBA{R: 8, G: 8, B: 12, A: 255}

// ComposeNet copies the per-face images into dst laid out as the unfolded
// cube net (see cube.Topology.NetPosition). dst must be at least NetSize
// pixels; the pole faces are drawn once above and below every ring face.
func ComposeNet(topo cube.Topology, faces [cube.FaceCount]*image.RGBA, dst *image.RGBA) {
	w, h := topo.NetSize()
	b := dst.Bounds()
	for y := 0; y < h && b.Min.Y+y < b.Max.Y; y++ {
		for x := 0; x < w && b.Min.X+x < b.Max.X; x++ {
			off := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
			p, ok := topo.NetPosition(x, y)
			src := faces[p.Face]
			if !ok || src == nil {
				setPixel(dst.Pix[off:off+4], Background)
				continue
			}
			soff := src.PixOffset(src.Rect.Min.X+p.X, src.Rect.Min.Y+p.Y)
			copy(dst.Pix[off:off+4], src.Pix[soff:soff+4])
		}
	}
}

// NewNetImage allocates an image sized for the unfolded net.
func NewNetImage(topo cube.Topology) *image.RGBA {
	w, h := topo.NetSize()
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func setPixel(px []byte, c color.RGBA) {
	px[0] = c.R
	px[1] = c.G
	px[2] = c.B
	px[3] = c.A
}
