package gpu_test

import (
	"testing"

	"github.com/hubastard/scenebox/engine/colors"
	"github.com/hubastard/scenebox/engine/gpu"
	"github.com/hubastard/scenebox/engine/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quad struct {
	vb     *gpu.VertexBuffer
	va     *gpu.VertexArray
	ib     *gpu.IndexBuffer
	shader *gpu.Shader
}

func newQuad(t *testing.T, p *gpu.Probe) quad {
	t.Helper()
	q := quad{vb: gpu.NewVertexBufferFloat32(p, make([]float32, 16))}
	var layout gpu.VertexLayout
	layout.PushFloat(2)
	layout.PushFloat(2)
	q.va = gpu.NewVertexArray(p)
	q.va.AddBuffer(q.vb, &layout)
	q.ib = gpu.NewIndexBuffer(p, []uint32{0, 1, 2, 2, 3, 0})
	var err error
	q.shader, err = gpu.NewShaderFromSource(p, "quad", testSource)
	require.NoError(t, err)
	return q
}

func TestRendererDrawRebinds(t *testing.T) {
	rec, _, p := gputest.NewProbe(true)
	r := gpu.NewRenderer(p)
	a := newQuad(t, p)
	b := newQuad(t, p)

	// leave b's objects bound, then draw a
	b.shader.Bind()
	b.va.Bind()
	b.ib.Bind()
	rec.Reset()
	r.Draw(a.va, a.ib, a.shader, gpu.Triangles)

	assert.Equal(t, []string{"UseProgram", "BindVertexArray", "BindBuffer", "DrawElements"}, rec.Names())
	assert.Equal(t, a.shader.ID(), rec.BoundProgram)
	assert.Equal(t, a.va.ID(), rec.BoundVertexArray)
	assert.Equal(t, a.ib.ID(), rec.BoundElementBuffer)
	assert.Equal(t, []any{gpu.Triangles, int32(6), gpu.UnsignedInt, uintptr(0)}, rec.Named("DrawElements")[0].Args)
}

func TestRendererState(t *testing.T) {
	rec, _, p := gputest.NewProbe(true)
	r := gpu.NewRenderer(p)
	assert.Same(t, p, r.Probe())

	r.SetClearColor(colors.Sky)
	r.Clear()
	r.EnableBlending()
	r.Resize(800, 600)

	assert.Equal(t, []any{float32(0.2), float32(0.3), float32(0.8), float32(1)}, rec.Named("ClearColor")[0].Args)
	assert.Equal(t, []any{gpu.ColorBufferBit}, rec.Named("Clear")[0].Args)
	assert.Equal(t, []any{gpu.Blend}, rec.Named("Enable")[0].Args)
	assert.Equal(t, []any{gpu.SrcAlpha, gpu.OneMinusSrcAlpha}, rec.Named("BlendFunc")[0].Args)
	assert.Equal(t, []any{int32(0), int32(0), int32(800), int32(600)}, rec.Named("Viewport")[0].Args)
}
