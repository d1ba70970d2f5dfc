package gpu

import (
	"encoding/binary"
	"math"
)

// VertexBuffer owns one GPU array buffer whose contents are fixed at construction.
type VertexBuffer struct {
	p    *Probe
	id   uint32
	size int
}

// NewVertexBuffer uploads data into a new static array buffer. The buffer stays bound.
func NewVertexBuffer(p *Probe, data []byte) *VertexBuffer {
	vb := &VertexBuffer{p: p, size: len(data)}
	p.Call("glGenBuffers", func() { vb.id = p.API.GenBuffer() })
	p.Call("glBindBuffer", func() { p.API.BindBuffer(ArrayBuffer, vb.id) })
	p.Call("glBufferData", func() { p.API.BufferData(ArrayBuffer, data, StaticDraw) })
	return vb
}

// NewVertexBufferFloat32 is NewVertexBuffer for tightly packed float32 vertex data.
func NewVertexBufferFloat32(p *Probe, data []float32) *VertexBuffer {
	return NewVertexBuffer(p, Float32Bytes(data))
}

// Float32Bytes packs v in the host (little-endian) layout the driver expects.
func Float32Bytes(v []float32) []byte {
	out := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

func (vb *VertexBuffer) ID() uint32 { return vb.id }

// Size is the uploaded size in bytes.
func (vb *VertexBuffer) Size() int { return vb.size }

func (vb *VertexBuffer) Bind() {
	vb.p.Call("glBindBuffer", func() { vb.p.API.BindBuffer(ArrayBuffer, vb.id) })
}

func (vb *VertexBuffer) Unbind() {
	vb.p.Call("glBindBuffer", func() { vb.p.API.BindBuffer(ArrayBuffer, 0) })
}

// Delete releases the GPU buffer. Further calls are no-ops.
func (vb *VertexBuffer) Delete() {
	if vb.id == 0 {
		return
	}
	vb.p.Call("glDeleteBuffers", func() { vb.p.API.DeleteBuffer(vb.id) })
	vb.id = 0
}

// IndexBuffer owns one GPU element array buffer of uint32 indices.
type IndexBuffer struct {
	p     *Probe
	id    uint32
	count int
}

// NewIndexBuffer uploads indices into a new static element buffer. The buffer stays bound.
func NewIndexBuffer(p *Probe, indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{p: p, count: len(indices)}
	data := make([]byte, 4*len(indices))
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(data[i*4:], idx)
	}
	p.Call("glGenBuffers", func() { ib.id = p.API.GenBuffer() })
	p.Call("glBindBuffer", func() { p.API.BindBuffer(ElementArrayBuffer, ib.id) })
	p.Call("glBufferData", func() { p.API.BufferData(ElementArrayBuffer, data, StaticDraw) })
	return ib
}

func (ib *IndexBuffer) ID() uint32 { return ib.id }

// Count is the number of indices.
func (ib *IndexBuffer) Count() int { return ib.count }

func (ib *IndexBuffer) Bind() {
	ib.p.Call("glBindBuffer", func() { ib.p.API.BindBuffer(ElementArrayBuffer, ib.id) })
}

func (ib *IndexBuffer) Unbind() {
	ib.p.Call("glBindBuffer", func() { ib.p.API.BindBuffer(ElementArrayBuffer, 0) })
}

func (ib *IndexBuffer) Delete() {
	if ib.id == 0 {
		return
	}
	ib.p.Call("glDeleteBuffers", func() { ib.p.API.DeleteBuffer(ib.id) })
	ib.id = 0
}
