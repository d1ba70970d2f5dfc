package glbackend

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/scenebox/engine/gpu"
)

// Device forwards gpu.API calls to the current OpenGL 3.3 core context. Init must
// run after the context is made current.
type Device struct{}

func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Device{}, nil
}

func (d *Device) Vendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (d *Device) Renderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (d *Device) Version() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (d *Device) GetError() uint32 { return gl.GetError() }

func (d *Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *Device) DeleteBuffer(id uint32)       { gl.DeleteBuffers(1, &id) }
func (d *Device) BindBuffer(target, id uint32) { gl.BindBuffer(target, id) }

func (d *Device) BufferData(target uint32, data []byte, usage uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(target, len(data), ptr, usage)
}

func (d *Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *Device) DeleteVertexArray(id uint32)          { gl.DeleteVertexArrays(1, &id) }
func (d *Device) BindVertexArray(id uint32)            { gl.BindVertexArray(id) }
func (d *Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (d *Device) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (d *Device) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }

func (d *Device) ShaderSource(id uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(id, 1, csrc, nil)
}

func (d *Device) CompileShader(id uint32) { gl.CompileShader(id) }

func (d *Device) ShaderCompileStatus(id uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLen int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
	return false, infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(id, logLen, nil, buf) })
}

func (d *Device) DeleteShader(id uint32)              { gl.DeleteShader(id) }
func (d *Device) CreateProgram() uint32               { return gl.CreateProgram() }
func (d *Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (d *Device) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (d *Device) ProgramLinkStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	return false, infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
}

func infoLog(n int32, read func(*uint8)) string {
	if n <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	read(gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Device) ValidateProgram(program uint32) { gl.ValidateProgram(program) }
func (d *Device) DeleteProgram(program uint32)   { gl.DeleteProgram(program) }
func (d *Device) UseProgram(program uint32)      { gl.UseProgram(program) }

func (d *Device) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(location int32, v int32)   { gl.Uniform1i(location, v) }
func (d *Device) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (d *Device) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (d *Device) UniformMatrix4fv(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (d *Device) DeleteTexture(id uint32)       { gl.DeleteTextures(1, &id) }
func (d *Device) ActiveTexture(unit uint32)     { gl.ActiveTexture(unit) }
func (d *Device) BindTexture(target, id uint32) { gl.BindTexture(target, id) }

func (d *Device) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (d *Device) TexImage2D(target uint32, internalFormat int32, width, height int32, format, xtype uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(target, 0, internalFormat, width, height, 0, format, xtype, ptr)
}

func (d *Device) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, offset)
}

func (d *Device) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (d *Device) Clear(mask uint32)                  { gl.Clear(mask) }
func (d *Device) Enable(capability uint32)           { gl.Enable(capability) }
func (d *Device) BlendFunc(sfactor, dfactor uint32)  { gl.BlendFunc(sfactor, dfactor) }
func (d *Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

var _ gpu.API = (*Device)(nil)
