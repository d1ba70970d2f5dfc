package gpu

// Enum values share their numeric value with the OpenGL constants, so a backend
// can forward them to the driver untouched.
const (
	NoError          uint32 = 0
	InvalidEnum      uint32 = 0x0500
	InvalidValue     uint32 = 0x0501
	InvalidOperation uint32 = 0x0502
	OutOfMemory      uint32 = 0x0505
	InvalidFBOp      uint32 = 0x0506

	UnsignedByte uint32 = 0x1401
	UnsignedInt  uint32 = 0x1405
	Float        uint32 = 0x1406

	Lines     uint32 = 0x0001
	Triangles uint32 = 0x0004

	ArrayBuffer        uint32 = 0x8892
	ElementArrayBuffer uint32 = 0x8893
	StaticDraw         uint32 = 0x88E4

	VertexShader   uint32 = 0x8B31
	FragmentShader uint32 = 0x8B30

	Texture2D      uint32 = 0x0DE1
	Texture0       uint32 = 0x84C0
	TexMinFilter   uint32 = 0x2801
	TexMagFilter   uint32 = 0x2800
	TexWrapS       uint32 = 0x2802
	TexWrapT       uint32 = 0x2803
	Linear         uint32 = 0x2601
	ClampToEdge    uint32 = 0x812F
	RGBA           uint32 = 0x1908
	RGBA8          uint32 = 0x8058
	ColorBufferBit uint32 = 0x00004000

	Blend            uint32 = 0x0BE2
	SrcAlpha         uint32 = 0x0302
	OneMinusSrcAlpha uint32 = 0x0303
)

// ErrorName returns the symbolic name of a GL error code.
func ErrorName(code uint32) string {
	switch code {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFBOp:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "GL_UNKNOWN_ERROR"
	}
}

// API is the slice of the graphics API this package drives. All calls must be made
// from the thread that owns the context.
type API interface {
	GetError() uint32

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target, id uint32)
	BufferData(target uint32, data []byte, usage uint32)

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	CreateShader(stage uint32) uint32
	ShaderSource(id uint32, src string)
	CompileShader(id uint32)
	ShaderCompileStatus(id uint32) (ok bool, infoLog string)
	DeleteShader(id uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) (ok bool, infoLog string)
	ValidateProgram(program uint32)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(location int32, m [16]float32)

	GenTexture() uint32
	DeleteTexture(id uint32)
	ActiveTexture(unit uint32)
	BindTexture(target, id uint32)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, internalFormat int32, width, height int32, format, xtype uint32, pixels []byte)

	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Enable(capability uint32)
	BlendFunc(sfactor, dfactor uint32)
	Viewport(x, y, width, height int32)
}
