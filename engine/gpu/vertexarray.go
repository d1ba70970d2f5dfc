package gpu

// VertexArray owns a vertex array object: the unit a draw call reads vertices from.
type VertexArray struct {
	p  *Probe
	id uint32
}

func NewVertexArray(p *Probe) *VertexArray {
	va := &VertexArray{p: p}
	p.Call("glGenVertexArrays", func() { va.id = p.API.GenVertexArray() })
	return va
}

func (va *VertexArray) ID() uint32 { return va.id }

// AddBuffer wires vb into this vertex array following layout. It is meant to be
// called once per buffer.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *VertexLayout) {
	va.Bind()
	vb.Bind()

	api := va.p.API
	stride := int32(layout.Stride())
	offset := 0
	for i, e := range layout.Elements() {
		slot := uint32(i)
		va.p.Call("glEnableVertexAttribArray", func() { api.EnableVertexAttribArray(slot) })
		off := uintptr(offset)
		va.p.Call("glVertexAttribPointer", func() {
			api.VertexAttribPointer(slot, int32(e.Count), e.Type, e.Normalized, stride, off)
		})
		offset += e.Size()
	}
}

func (va *VertexArray) Bind() {
	va.p.Call("glBindVertexArray", func() { va.p.API.BindVertexArray(va.id) })
}

func (va *VertexArray) Unbind() {
	va.p.Call("glBindVertexArray", func() { va.p.API.BindVertexArray(0) })
}

func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	va.p.Call("glDeleteVertexArrays", func() { va.p.API.DeleteVertexArray(va.id) })
	va.id = 0
}
