package render

import (
	"image"
	"image/color"
	"testing"

	"cube-planet/internal/cube"
)

func faceColor(f cube.Face) color.RGBA {
	return color.RGBA{R: uint8(40 * (int(f) + 1)), G: 7, B: uint8(f), A: 255}
}

func TestComposeNetPlacesFaces(t *testing.T) {
	topo := cube.New(3)
	var faces [cube.FaceCount]*image.RGBA
	for _, f := range cube.Faces {
		img := image.NewRGBA(image.Rect(0, 0, 3, 3))
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				img.SetRGBA(x, y, faceColor(f))
			}
		}
		faces[f] = img
	}
	faces[cube.FaceFront].SetRGBA(2, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	dst := NewNetImage(topo)
	ComposeNet(topo, faces, dst)

	w, h := topo.NetSize()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p, _ := topo.NetPosition(x, y)
			want := faces[p.Face].RGBAAt(p.X, p.Y)
			if got := dst.RGBAAt(x, y); got != want {
				t.Fatalf("net (%d,%d) = %v, want %v from %s", x, y, got, want, p)
			}
		}
	}
	if got := dst.RGBAAt(3+2, 3+1); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("marked front pixel = %v", got)
	}
}

func TestComposeNetMissingFace(t *testing.T) {
	topo := cube.New(2)
	var faces [cube.FaceCount]*image.RGBA
	dst := NewNetImage(topo)
	ComposeNet(topo, faces, dst)
	if got := dst.RGBAAt(3, 3); got != Background {
		t.Fatalf("pixel = %v, want background", got)
	}
}

func TestComposeNetClipsToDestination(t *testing.T) {
	topo := cube.New(4)
	var faces [cube.FaceCount]*image.RGBA
	dst := image.NewRGBA(image.Rect(0, 0, 5, 5))
	ComposeNet(topo, faces, dst)
	if got := dst.RGBAAt(4, 4); got != Background {
		t.Fatalf("pixel = %v, want background", got)
	}
}
