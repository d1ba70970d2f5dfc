package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/scenebox/engine/colors"
	"github.com/hubastard/scenebox/engine/gpu"
	"github.com/hubastard/scenebox/engine/scene"
)

const (
	sombreroSide   = 60
	sombreroK      = 10
	defaultAngleX  = -60
	defaultSpinDeg = 4.2 // degrees per second around Z
)

// sombreroHeight is sin(r)/r over the scaled radius, 1 at the origin.
func sombreroHeight(x, y float32) float32 {
	const eps = 0.0001
	if abs32(x) < eps && abs32(y) < eps {
		return 1
	}
	r := math.Hypot(float64(x*sombreroK), float64(y*sombreroK))
	return float32(math.Sin(r) / r)
}

func abs32(v float32) float32 { return float32(math.Abs(float64(v))) }

// sombreroGrid samples the surface on a side×side grid over [-1, 1]² and
// returns xyz vertices plus line-endpoint indices joining grid neighbours.
func sombreroGrid(side int) ([]float32, []uint32) {
	step := float32(2) / float32(side-1)
	vertices := make([]float32, 0, side*side*3)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			x := -1 + float32(col)*step
			y := -1 + float32(row)*step
			vertices = append(vertices, x, y, sombreroHeight(x, y))
		}
	}

	indices := make([]uint32, 0, side*(side-1)*4)
	at := func(row, col int) uint32 { return uint32(row*side + col) }
	for row := 0; row < side; row++ {
		for col := 0; col < side-1; col++ {
			indices = append(indices, at(row, col), at(row, col+1))
		}
	}
	for row := 0; row < side-1; row++ {
		for col := 0; col < side; col++ {
			indices = append(indices, at(row, col), at(row+1, col))
		}
	}
	return vertices, indices
}

// sombreroScene draws the surface as a rotating wireframe.
type sombreroScene struct {
	ctx    *sceneContext
	shader *gpu.Shader
	vb     *gpu.VertexBuffer
	va     *gpu.VertexArray
	ib     *gpu.IndexBuffer

	angleX  float32
	angleZ  float32
	spin    float32
	animate bool
	color   colors.Color
}

func newSombreroScene(ctx *sceneContext) (*sombreroScene, error) {
	p := ctx.probe()
	shader, err := gpu.NewShader(p, ctx.assets.Shader("Sombrero.shader"))
	if err != nil {
		return nil, err
	}
	s := &sombreroScene{
		ctx:     ctx,
		shader:  shader,
		angleX:  defaultAngleX,
		spin:    defaultSpinDeg,
		animate: true,
		color:   colors.White,
	}

	vertices, indices := sombreroGrid(sombreroSide)
	s.vb = gpu.NewVertexBufferFloat32(p, vertices)
	var layout gpu.VertexLayout
	layout.PushFloat(3)
	s.va = gpu.NewVertexArray(p)
	s.va.AddBuffer(s.vb, &layout)
	s.ib = gpu.NewIndexBuffer(p, indices)

	s.shader.Bind()
	s.shader.SetUniform4f("u_Color", s.color[0], s.color[1], s.color[2], s.color[3])

	s.va.Unbind()
	s.shader.Unbind()
	s.vb.Unbind()
	s.ib.Unbind()
	return s, nil
}

// Update spins the surface around Z, wrapping at ±180°.
func (s *sombreroScene) Update(dt float32) {
	if !s.animate {
		return
	}
	s.angleZ += s.spin * dt
	if s.angleZ >= 180 {
		s.angleZ -= 360
	}
}

// model rotates around X then Z and squeezes x so the grid stays square.
func (s *sombreroScene) model() mgl32.Mat4 {
	m := mgl32.Scale3D(1/s.ctx.viewport.Aspect(), 1, 1)
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.angleX)))
	return m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.angleZ)))
}

func (s *sombreroScene) Render(r *gpu.Renderer) {
	s.shader.Bind()
	s.shader.SetUniform4f("u_Color", s.color[0], s.color[1], s.color[2], s.color[3])
	s.shader.SetUniformMat4("u_MVP", s.model())
	r.Draw(s.va, s.ib, s.shader, gpu.Lines)
}

func (s *sombreroScene) RenderControls(c scene.Controls) {
	c.SliderFloat("Rotation X", &s.angleX, -90, 90)
	c.SliderFloat("Rotation Z", &s.angleZ, -180, 180)
	c.SliderFloat("Spin (deg/s)", &s.spin, 0, 90)
	if c.Button("Start/stop animation") {
		s.animate = !s.animate
	}
	if c.Button("Reset rotation X") {
		s.angleX = defaultAngleX
	}
	if c.Button("Reset rotation Z") {
		s.angleZ = 0
	}
	c.ColorEdit4("Color", &s.color)
}

func (s *sombreroScene) Delete() {
	s.ib.Delete()
	s.va.Delete()
	s.vb.Delete()
	s.shader.Delete()
}
