package gpu

import "fmt"

// Image is decoded raster data: tightly packed RGBA8 rows, bottom row first.
// Channels is the channel count of the source file.
type Image struct {
	Width, Height int
	Channels      int
	Pixels        []byte
}

// ImageDecoder loads an image file as flipped RGBA8 pixels.
type ImageDecoder interface {
	Decode(path string) (Image, error)
}

// Texture owns a 2D texture object with linear filtering and edge clamping.
type Texture struct {
	p      *Probe
	id     uint32
	path   string
	width  int
	height int
	bpp    int
}

// NewTexture decodes path and uploads it to a new texture. The decoded pixels
// are not retained.
func NewTexture(p *Probe, path string, dec ImageDecoder) (*Texture, error) {
	img, err := dec.Decode(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTextureDecode, path, err)
	}
	if len(img.Pixels) < img.Width*img.Height*4 {
		return nil, fmt.Errorf("%w: %s: %d bytes for %dx%d RGBA", ErrTextureDecode, path, len(img.Pixels), img.Width, img.Height)
	}
	t := &Texture{p: p, path: path, width: img.Width, height: img.Height, bpp: img.Channels}

	api := p.API
	p.Call("glGenTextures", func() { t.id = api.GenTexture() })
	p.Call("glBindTexture", func() { api.BindTexture(Texture2D, t.id) })
	p.Call("glTexParameteri", func() { api.TexParameteri(Texture2D, TexMinFilter, int32(Linear)) })
	p.Call("glTexParameteri", func() { api.TexParameteri(Texture2D, TexMagFilter, int32(Linear)) })
	p.Call("glTexParameteri", func() { api.TexParameteri(Texture2D, TexWrapS, int32(ClampToEdge)) })
	p.Call("glTexParameteri", func() { api.TexParameteri(Texture2D, TexWrapT, int32(ClampToEdge)) })
	p.Call("glTexImage2D", func() {
		api.TexImage2D(Texture2D, int32(RGBA8), int32(img.Width), int32(img.Height), RGBA, UnsignedByte, img.Pixels)
	})
	p.Call("glBindTexture", func() { api.BindTexture(Texture2D, 0) })
	return t, nil
}

func (t *Texture) ID() uint32   { return t.id }
func (t *Texture) Path() string { return t.path }
func (t *Texture) Width() int   { return t.width }
func (t *Texture) Height() int  { return t.height }
func (t *Texture) BPP() int     { return t.bpp }

// Bind activates texture unit slot and binds the texture to it.
func (t *Texture) Bind(slot uint32) {
	t.p.Call("glActiveTexture", func() { t.p.API.ActiveTexture(Texture0 + slot) })
	t.p.Call("glBindTexture", func() { t.p.API.BindTexture(Texture2D, t.id) })
}

func (t *Texture) Unbind() {
	t.p.Call("glBindTexture", func() { t.p.API.BindTexture(Texture2D, 0) })
}

func (t *Texture) Delete() {
	if t.id == 0 {
		return
	}
	t.p.Call("glDeleteTextures", func() { t.p.API.DeleteTexture(t.id) })
	t.id = 0
}
