package gpu_test

import (
	"testing"

	"github.com/hubastard/scenebox/engine/gpu"
	"github.com/stretchr/testify/assert"
)

func TestVertexLayoutStride(t *testing.T) {
	var l gpu.VertexLayout
	assert.Equal(t, 0, l.Stride())

	l.PushFloat(3)
	l.PushFloat(2)
	l.PushUbyte(4)
	l.PushUint(1)

	assert.Equal(t, 12+8+4+4, l.Stride())
	assert.Equal(t, 0, l.Offset(0))
	assert.Equal(t, 12, l.Offset(1))
	assert.Equal(t, 20, l.Offset(2))
	assert.Equal(t, 24, l.Offset(3))

	el := l.Elements()
	assert.Len(t, el, 4)
	assert.False(t, el[0].Normalized)
	assert.True(t, el[2].Normalized)
	assert.Equal(t, gpu.UnsignedInt, el[3].Type)
}

func TestSizeOfType(t *testing.T) {
	assert.Equal(t, 4, gpu.SizeOfType(gpu.Float))
	assert.Equal(t, 4, gpu.SizeOfType(gpu.UnsignedInt))
	assert.Equal(t, 1, gpu.SizeOfType(gpu.UnsignedByte))
	assert.Panics(t, func() { gpu.SizeOfType(gpu.Triangles) })
}
