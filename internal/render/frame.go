package render

import (
	"bytes"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// FrameEncoder turns rendered images into PNG bytes for streaming. It reuses
// its buffers between frames and is not safe for concurrent use.
type FrameEncoder struct {
	scale  int
	scaled *image.RGBA
	enc    png.Encoder
	buf    bytes.Buffer
}

// NewFrameEncoder returns an encoder that enlarges frames by scale using
// nearest-neighbour sampling, so individual cells stay crisp in a browser.
func NewFrameEncoder(scale int) *FrameEncoder {
	if scale < 1 {
		scale = 1
	}
	return &FrameEncoder{scale: scale, enc: png.Encoder{CompressionLevel: png.BestSpeed}}
}

// Encode returns the PNG encoding of img. The returned slice is only valid
// until the next call.
func (f *FrameEncoder) Encode(img *image.RGBA) ([]byte, error) {
	src := image.Image(img)
	if f.scale > 1 {
		src = f.upscale(img)
	}
	f.buf.Reset()
	if err := f.enc.Encode(&f.buf, src); err != nil {
		return nil, err
	}
	return f.buf.Bytes(), nil
}

func (f *FrameEncoder) upscale(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	rect := image.Rect(0, 0, b.Dx()*f.scale, b.Dy()*f.scale)
	if f.scaled == nil || f.scaled.Rect != rect {
		f.scaled = image.NewRGBA(rect)
	}
	xdraw.NearestNeighbor.Scale(f.scaled, rect, img, b, xdraw.Src, nil)
	return f.scaled
}
