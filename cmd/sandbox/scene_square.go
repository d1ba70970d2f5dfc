package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/scenebox/engine/gpu"
	"github.com/hubastard/scenebox/engine/scene"
)

var squareIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// squareScene draws one textured quad twice at two tunable translations.
type squareScene struct {
	ctx    *sceneContext
	cam    *scene.OrthoCamera2D
	ctrl   *scene.OrthoController2D
	shader *gpu.Shader
	vb     *gpu.VertexBuffer
	va     *gpu.VertexArray
	ib     *gpu.IndexBuffer
	tex    [2]*gpu.Texture
	active int

	translationA [3]float32
	translationB [3]float32
}

// squareVertices returns a size×size quad centred on the origin: pos2 + uv2.
func squareVertices(size float32) []float32 {
	h := size / 2
	return []float32{
		-h, -h, 0, 0,
		h, -h, 1, 0,
		h, h, 1, 1,
		-h, h, 0, 1,
	}
}

func newSquareScene(ctx *sceneContext, size float32) (*squareScene, error) {
	p := ctx.probe()
	shader, err := gpu.NewShader(p, ctx.assets.Shader("BasicWithTexture.shader"))
	if err != nil {
		return nil, err
	}
	s := &squareScene{
		ctx:          ctx,
		shader:       shader,
		translationA: [3]float32{100, 100, 0},
		translationB: [3]float32{200, 200, 0},
	}
	for i, name := range [...]string{"logo.png", "checker.png"} {
		tex, err := gpu.NewTexture(p, ctx.assets.Texture(name), ctx.decoder)
		if err != nil {
			s.Delete()
			return nil, err
		}
		s.tex[i] = tex
	}

	s.vb = gpu.NewVertexBufferFloat32(p, squareVertices(size))
	var layout gpu.VertexLayout
	layout.PushFloat(2) // position
	layout.PushFloat(2) // uv
	s.va = gpu.NewVertexArray(p)
	s.va.AddBuffer(s.vb, &layout)
	s.ib = gpu.NewIndexBuffer(p, squareIndices)

	s.cam = scene.NewOrtho2D(ctx.viewport)
	s.ctrl = scene.NewOrthoController2D(s.cam)

	s.shader.Bind()
	s.tex[s.active].Bind(0)
	s.shader.SetUniform1i("u_Texture", 0)

	s.va.Unbind()
	s.shader.Unbind()
	s.vb.Unbind()
	s.ib.Unbind()
	return s, nil
}

func (s *squareScene) Update(dt float32) {
	s.ctrl.Update(s.ctx.input, dt)
}

func (s *squareScene) Resize(v scene.Viewport) { s.cam.SetViewport(v) }

func (s *squareScene) Render(r *gpu.Renderer) {
	s.tex[s.active].Bind(0)
	s.shader.Bind()
	vp := s.cam.VP()
	for _, t := range [...][3]float32{s.translationA, s.translationB} {
		model := mgl32.Translate3D(t[0], t[1], t[2])
		s.shader.SetUniformMat4("u_MVP", vp.Mul4(model))
		r.Draw(s.va, s.ib, s.shader, gpu.Triangles)
	}
}

func (s *squareScene) RenderControls(c scene.Controls) {
	w := float32(s.ctx.viewport.Width)
	c.SliderFloat3("Translation A", &s.translationA, -w, w)
	c.SliderFloat3("Translation B", &s.translationB, -w, w)
	if c.Button("Reset translation A") {
		s.translationA = [3]float32{}
	}
	if c.Button("Reset translation B") {
		s.translationB = [3]float32{}
	}
	if c.Button("Change texture") {
		s.active = (s.active + 1) % len(s.tex)
		s.shader.Bind()
		s.tex[s.active].Bind(0)
		s.shader.SetUniform1i("u_Texture", 0)
	}
}

func (s *squareScene) Delete() {
	for _, t := range s.tex {
		if t != nil {
			t.Delete()
		}
	}
	if s.ib != nil {
		s.ib.Delete()
	}
	if s.va != nil {
		s.va.Delete()
	}
	if s.vb != nil {
		s.vb.Delete()
	}
	s.shader.Delete()
}
