// Package gputest provides an in-memory gpu.API for tests.
package gputest

import (
	"fmt"

	"github.com/hubastard/scenebox/engine/gpu"
)

// Call is one recorded API invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string { return fmt.Sprintf("%s%v", c.Name, c.Args) }

// Recorder implements gpu.API without a driver. It hands out handles, tracks the
// bound state that tests care about and records every call except GetError.
type Recorder struct {
	Calls []Call

	// Uniforms maps uniform names to locations; absent names resolve to -1.
	Uniforms map[string]int32
	// CompileErrors fails compilation of a stage with the given info log.
	CompileErrors map[uint32]string
	// LinkError fails linking when non-empty.
	LinkError string

	Buffers  map[uint32][]byte
	Textures map[uint32][]byte

	BoundArrayBuffer   uint32
	BoundElementBuffer uint32
	BoundVertexArray   uint32
	BoundProgram       uint32
	BoundTextures      map[uint32]uint32 // unit -> texture
	ActiveUnit         uint32

	next       uint32
	stages     map[uint32]uint32
	live       map[uint32]string
	deleted    map[uint32]int
	errQueue   []uint32
	failOnCall map[string]uint32
}

func NewRecorder() *Recorder {
	return &Recorder{
		Uniforms:      map[string]int32{},
		CompileErrors: map[uint32]string{},
		Buffers:       map[uint32][]byte{},
		Textures:      map[uint32][]byte{},
		BoundTextures: map[uint32]uint32{},
		stages:        map[uint32]uint32{},
		live:          map[uint32]string{},
		deleted:       map[uint32]int{},
		failOnCall:    map[string]uint32{},
	}
}

// FailOn queues code on the error queue every time the named call runs.
func (r *Recorder) FailOn(name string, code uint32) { r.failOnCall[name] = code }

// QueueError leaves code pending as if an earlier, unprobed call had failed.
func (r *Recorder) QueueError(code uint32) { r.errQueue = append(r.errQueue, code) }

// Named returns the recorded calls called name, in order.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times name was called.
func (r *Recorder) Count(name string) int { return len(r.Named(name)) }

// Names returns the recorded call names in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

// Reset forgets the recorded calls but keeps object state.
func (r *Recorder) Reset() { r.Calls = nil }

// Live reports the handles created and not yet deleted, mapped to their kind.
func (r *Recorder) Live() map[uint32]string {
	out := make(map[uint32]string, len(r.live))
	for k, v := range r.live {
		out[k] = v
	}
	return out
}

// Deletes reports how many times handle id was released.
func (r *Recorder) Deletes(id uint32) int { return r.deleted[id] }

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
	if code, ok := r.failOnCall[name]; ok {
		r.errQueue = append(r.errQueue, code)
	}
}

func (r *Recorder) create(kind string) uint32 {
	r.next++
	r.live[r.next] = kind
	return r.next
}

func (r *Recorder) release(id uint32) {
	if id == 0 {
		return
	}
	if _, ok := r.live[id]; !ok {
		r.errQueue = append(r.errQueue, gpu.InvalidValue)
	}
	delete(r.live, id)
	r.deleted[id]++
}

func (r *Recorder) GetError() uint32 {
	if len(r.errQueue) == 0 {
		return gpu.NoError
	}
	code := r.errQueue[0]
	r.errQueue = r.errQueue[1:]
	return code
}

func (r *Recorder) GenBuffer() uint32 {
	id := r.create("buffer")
	r.record("GenBuffer", id)
	return id
}

func (r *Recorder) DeleteBuffer(id uint32) {
	r.record("DeleteBuffer", id)
	r.release(id)
}

func (r *Recorder) BindBuffer(target, id uint32) {
	r.record("BindBuffer", target, id)
	switch target {
	case gpu.ArrayBuffer:
		r.BoundArrayBuffer = id
	case gpu.ElementArrayBuffer:
		r.BoundElementBuffer = id
	}
}

func (r *Recorder) BufferData(target uint32, data []byte, usage uint32) {
	r.record("BufferData", target, len(data), usage)
	bound := r.BoundArrayBuffer
	if target == gpu.ElementArrayBuffer {
		bound = r.BoundElementBuffer
	}
	r.Buffers[bound] = append([]byte(nil), data...)
}

func (r *Recorder) GenVertexArray() uint32 {
	id := r.create("vertex array")
	r.record("GenVertexArray", id)
	return id
}

func (r *Recorder) DeleteVertexArray(id uint32) {
	r.record("DeleteVertexArray", id)
	r.release(id)
}

func (r *Recorder) BindVertexArray(id uint32) {
	r.record("BindVertexArray", id)
	r.BoundVertexArray = id
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	r.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (r *Recorder) CreateShader(stage uint32) uint32 {
	id := r.create("shader")
	r.stages[id] = stage
	r.record("CreateShader", stage, id)
	return id
}

func (r *Recorder) ShaderSource(id uint32, src string) { r.record("ShaderSource", id, src) }
func (r *Recorder) CompileShader(id uint32)            { r.record("CompileShader", id) }

func (r *Recorder) ShaderCompileStatus(id uint32) (bool, string) {
	r.record("ShaderCompileStatus", id)
	if msg, ok := r.CompileErrors[r.stages[id]]; ok {
		return false, msg
	}
	return true, ""
}

func (r *Recorder) DeleteShader(id uint32) {
	r.record("DeleteShader", id)
	r.release(id)
}

func (r *Recorder) CreateProgram() uint32 {
	id := r.create("program")
	r.record("CreateProgram", id)
	return id
}

func (r *Recorder) AttachShader(program, shader uint32) { r.record("AttachShader", program, shader) }
func (r *Recorder) LinkProgram(program uint32)          { r.record("LinkProgram", program) }

func (r *Recorder) ProgramLinkStatus(program uint32) (bool, string) {
	r.record("ProgramLinkStatus", program)
	if r.LinkError != "" {
		return false, r.LinkError
	}
	return true, ""
}

func (r *Recorder) ValidateProgram(program uint32) { r.record("ValidateProgram", program) }

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
	r.release(program)
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
	r.BoundProgram = program
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int32 {
	r.record("GetUniformLocation", program, name)
	if loc, ok := r.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) Uniform1i(location int32, v int32)   { r.record("Uniform1i", location, v) }
func (r *Recorder) Uniform1f(location int32, v float32) { r.record("Uniform1f", location, v) }

func (r *Recorder) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	r.record("Uniform4f", location, v0, v1, v2, v3)
}

func (r *Recorder) UniformMatrix4fv(location int32, m [16]float32) {
	r.record("UniformMatrix4fv", location, m)
}

func (r *Recorder) GenTexture() uint32 {
	id := r.create("texture")
	r.record("GenTexture", id)
	return id
}

func (r *Recorder) DeleteTexture(id uint32) {
	r.record("DeleteTexture", id)
	r.release(id)
}

func (r *Recorder) ActiveTexture(unit uint32) {
	r.record("ActiveTexture", unit)
	r.ActiveUnit = unit - gpu.Texture0
}

func (r *Recorder) BindTexture(target, id uint32) {
	r.record("BindTexture", target, id)
	r.BoundTextures[r.ActiveUnit] = id
}

func (r *Recorder) TexParameteri(target, pname uint32, param int32) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) TexImage2D(target uint32, internalFormat int32, width, height int32, format, xtype uint32, pixels []byte) {
	r.record("TexImage2D", target, internalFormat, width, height, format, xtype)
	r.Textures[r.BoundTextures[r.ActiveUnit]] = append([]byte(nil), pixels...)
}

func (r *Recorder) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	r.record("DrawElements", mode, count, xtype, offset)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask uint32)                  { r.record("Clear", mask) }
func (r *Recorder) Enable(capability uint32)           { r.record("Enable", capability) }
func (r *Recorder) BlendFunc(sfactor, dfactor uint32)  { r.record("BlendFunc", sfactor, dfactor) }
func (r *Recorder) Viewport(x, y, width, height int32) { r.record("Viewport", x, y, width, height) }

var _ gpu.API = (*Recorder)(nil)

// Log is a gpu.Logger that keeps formatted messages per level.
type Log struct {
	Debug, Warn, Error []string
}

func (l *Log) Debugf(format string, args ...interface{}) {
	l.Debug = append(l.Debug, fmt.Sprintf(format, args...))
}

func (l *Log) Warnf(format string, args ...interface{}) {
	l.Warn = append(l.Warn, fmt.Sprintf(format, args...))
}

func (l *Log) Errorf(format string, args ...interface{}) {
	l.Error = append(l.Error, fmt.Sprintf(format, args...))
}

var _ gpu.Logger = (*Log)(nil)

// NewProbe returns a recorder and a probe over it logging into the returned Log.
func NewProbe(debug bool) (*Recorder, *Log, *gpu.Probe) {
	rec := NewRecorder()
	l := &Log{}
	return rec, l, gpu.NewProbe(rec, l, debug)
}
