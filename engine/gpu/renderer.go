package gpu

import "github.com/hubastard/scenebox/engine/colors"

// Renderer issues draw calls. It keeps no binding state of its own: every Draw
// re-binds what it reads.
type Renderer struct {
	p *Probe
}

func NewRenderer(p *Probe) *Renderer { return &Renderer{p: p} }

// Probe exposes the error probe resources should be created with.
func (r *Renderer) Probe() *Probe { return r.p }

// Draw binds shader, va and ib in that order and draws all of ib's indices.
func (r *Renderer) Draw(va *VertexArray, ib *IndexBuffer, shader *Shader, mode uint32) {
	shader.Bind()
	va.Bind()
	ib.Bind()
	count := int32(ib.Count())
	r.p.Call("glDrawElements", func() { r.p.API.DrawElements(mode, count, UnsignedInt, 0) })
}

// Clear clears the color buffer only.
func (r *Renderer) Clear() {
	r.p.Call("glClear", func() { r.p.API.Clear(ColorBufferBit) })
}

func (r *Renderer) SetClearColor(c colors.Color) {
	r.p.Call("glClearColor", func() { r.p.API.ClearColor(c[0], c[1], c[2], c[3]) })
}

// EnableBlending turns on standard alpha blending.
func (r *Renderer) EnableBlending() {
	r.p.Call("glEnable", func() { r.p.API.Enable(Blend) })
	r.p.Call("glBlendFunc", func() { r.p.API.BlendFunc(SrcAlpha, OneMinusSrcAlpha) })
}

func (r *Renderer) Resize(w, h int) {
	r.p.Call("glViewport", func() { r.p.API.Viewport(0, 0, int32(w), int32(h)) })
}
