package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hubastard/scenebox/engine/core"
	"github.com/hubastard/scenebox/engine/gpu"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder loads image files as tightly packed RGBA8, flipped so the first row is
// the bottom of the image as OpenGL expects.
type Decoder struct {
	// NoFlip keeps the file's top-left row order.
	NoFlip bool
}

var _ gpu.ImageDecoder = Decoder{}

// Decode reads and converts the image at path.
func (d Decoder) Decode(path string) (gpu.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return gpu.Image{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return gpu.Image{}, fmt.Errorf("decode %q: %w", path, err)
	}
	out := ToImage(img, !d.NoFlip)
	core.LogDebug("decoded %s (%s) %dx%d, %d channels", path, format, out.Width, out.Height, out.Channels)
	return out, nil
}

// ToImage repacks img into straight (non-premultiplied) RGBA8 rows, optionally
// bottom row first.
func ToImage(img image.Image, flip bool) gpu.Image {
	rgba := imageToNRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()

	out := make([]byte, w*h*4)
	row := w * 4
	for y := 0; y < h; y++ {
		dst := y
		if flip {
			dst = h - 1 - y
		}
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+row]
		copy(out[dst*row:(dst+1)*row], src)
	}
	return gpu.Image{Width: w, Height: h, Channels: channels(img), Pixels: out}
}

func imageToNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// channels reports the channel count of the source image before RGBA conversion.
func channels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	}
	return 4
}
