package gpu

import "fmt"

// VertexElement is one attribute of a vertex.
type VertexElement struct {
	Type       uint32
	Count      int
	Normalized bool
}

// Size is the element's size in bytes.
func (e VertexElement) Size() int { return e.Count * SizeOfType(e.Type) }

// SizeOfType returns the byte size of an attribute component type. It panics for
// types a layout cannot hold.
func SizeOfType(t uint32) int {
	switch t {
	case Float, UnsignedInt:
		return 4
	case UnsignedByte:
		return 1
	}
	panic(fmt.Sprintf("gpu: unsupported vertex attribute type 0x%04X", t))
}

// VertexLayout describes how a vertex buffer splits into attributes. Element i is
// bound to attribute slot i.
type VertexLayout struct {
	elements []VertexElement
	stride   int
}

// Push appends an element of count components of type t.
func (l *VertexLayout) Push(t uint32, count int) {
	l.push(VertexElement{Type: t, Count: count, Normalized: t == UnsignedByte})
}

func (l *VertexLayout) PushFloat(count int) { l.Push(Float, count) }
func (l *VertexLayout) PushUint(count int)  { l.Push(UnsignedInt, count) }
func (l *VertexLayout) PushUbyte(count int) { l.Push(UnsignedByte, count) }

func (l *VertexLayout) push(e VertexElement) {
	l.elements = append(l.elements, e)
	l.stride += e.Size()
}

// Elements returns the elements in slot order.
func (l *VertexLayout) Elements() []VertexElement { return l.elements }

// Stride is the size of one vertex in bytes.
func (l *VertexLayout) Stride() int { return l.stride }

// Offset returns the byte offset of element i within a vertex.
func (l *VertexLayout) Offset(i int) int {
	off := 0
	for _, e := range l.elements[:i] {
		off += e.Size()
	}
	return off
}
