package gpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

const shaderMarker = "#shader"

// ShaderSource holds the per-stage sources of a combined shader file.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// ParseShaderSource splits a combined shader file into its stages. A line holding
// "#shader vertex" or "#shader fragment" starts a section; any other "#shader" line
// leaves no section active and the lines after it are dropped.
func ParseShaderSource(r io.Reader) (ShaderSource, error) {
	var (
		vs, fs  strings.Builder
		current *strings.Builder
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, shaderMarker) {
			switch {
			case strings.Contains(line, "vertex"):
				current = &vs
			case strings.Contains(line, "fragment"):
				current = &fs
			default:
				current = nil
			}
			continue
		}
		if current != nil {
			current.WriteString(line)
			current.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return ShaderSource{}, fmt.Errorf("%w: %v", ErrShaderSource, err)
	}
	return ShaderSource{Vertex: vs.String(), Fragment: fs.String()}, nil
}

// Shader owns a linked program and caches its uniform locations.
type Shader struct {
	p        *Probe
	id       uint32
	path     string
	uniforms map[string]int32
}

// NewShader reads, compiles and links the combined shader file at path.
func NewShader(p *Probe, path string) (*Shader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderSource, err)
	}
	defer f.Close()

	src, err := ParseShaderSource(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewShaderFromSource(p, path, src)
}

// NewShaderFromSource compiles and links src. name only labels diagnostics.
func NewShaderFromSource(p *Probe, name string, src ShaderSource) (*Shader, error) {
	id, err := createProgram(p, name, src)
	if err != nil {
		return nil, err
	}
	return &Shader{p: p, id: id, path: name, uniforms: make(map[string]int32)}, nil
}

func stageName(stage uint32) string {
	if stage == VertexShader {
		return "vertex"
	}
	return "fragment"
}

func compileStage(p *Probe, name string, stage uint32, src string) (uint32, error) {
	api := p.API
	var id uint32
	p.Call("glCreateShader", func() { id = api.CreateShader(stage) })
	p.Call("glShaderSource", func() { api.ShaderSource(id, src) })
	p.Call("glCompileShader", func() { api.CompileShader(id) })

	var (
		ok      bool
		infoLog string
	)
	p.Call("glGetShaderiv", func() { ok, infoLog = api.ShaderCompileStatus(id) })
	if !ok {
		p.Log.Errorf("Failed to compile %s shader %s: %s", stageName(stage), name, infoLog)
		p.Call("glDeleteShader", func() { api.DeleteShader(id) })
		return 0, fmt.Errorf("%w: %s stage of %s: %s", ErrShaderCompile, stageName(stage), name, strings.TrimSpace(infoLog))
	}
	return id, nil
}

func createProgram(p *Probe, name string, src ShaderSource) (uint32, error) {
	api := p.API
	vs, vErr := compileStage(p, name, VertexShader, src.Vertex)
	fs, fErr := compileStage(p, name, FragmentShader, src.Fragment)
	if err := errors.Join(vErr, fErr); err != nil {
		for _, id := range []uint32{vs, fs} {
			if id != 0 {
				p.Call("glDeleteShader", func() { api.DeleteShader(id) })
			}
		}
		return 0, err
	}

	var prog uint32
	p.Call("glCreateProgram", func() { prog = api.CreateProgram() })
	p.Call("glAttachShader", func() { api.AttachShader(prog, vs) })
	p.Call("glAttachShader", func() { api.AttachShader(prog, fs) })
	p.Call("glLinkProgram", func() { api.LinkProgram(prog) })

	var (
		ok      bool
		infoLog string
	)
	p.Call("glGetProgramiv", func() { ok, infoLog = api.ProgramLinkStatus(prog) })
	p.Call("glDeleteShader", func() { api.DeleteShader(vs) })
	p.Call("glDeleteShader", func() { api.DeleteShader(fs) })
	if !ok {
		p.Log.Errorf("Failed to link program %s: %s", name, infoLog)
		p.Call("glDeleteProgram", func() { api.DeleteProgram(prog) })
		return 0, fmt.Errorf("%w: %s: %s", ErrShaderLink, name, strings.TrimSpace(infoLog))
	}
	p.Call("glValidateProgram", func() { api.ValidateProgram(prog) })
	return prog, nil
}

func (s *Shader) ID() uint32 { return s.id }

// Path is the file the program was built from.
func (s *Shader) Path() string { return s.path }

func (s *Shader) Bind() {
	s.p.Call("glUseProgram", func() { s.p.API.UseProgram(s.id) })
}

func (s *Shader) Unbind() {
	s.p.Call("glUseProgram", func() { s.p.API.UseProgram(0) })
}

func (s *Shader) Delete() {
	if s.id == 0 {
		return
	}
	s.p.Call("glDeleteProgram", func() { s.p.API.DeleteProgram(s.id) })
	s.id = 0
}

// UniformLocation returns the location of name, querying the driver only the
// first time a name is seen. Missing uniforms are cached as -1.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	var loc int32
	s.p.Call("glGetUniformLocation", func() { loc = s.p.API.GetUniformLocation(s.id, name) })
	if loc == -1 {
		s.p.Log.Warnf("uniform %q does not exist in %s", name, s.path)
	}
	s.uniforms[name] = loc
	return loc
}

// The setters write to the currently bound program; call Bind first.

func (s *Shader) SetUniform1i(name string, v int32) {
	loc := s.UniformLocation(name)
	s.p.Call("glUniform1i", func() { s.p.API.Uniform1i(loc, v) })
}

func (s *Shader) SetUniform1f(name string, v float32) {
	loc := s.UniformLocation(name)
	s.p.Call("glUniform1f", func() { s.p.API.Uniform1f(loc, v) })
}

func (s *Shader) SetUniform4f(name string, v0, v1, v2, v3 float32) {
	loc := s.UniformLocation(name)
	s.p.Call("glUniform4f", func() { s.p.API.Uniform4f(loc, v0, v1, v2, v3) })
}

func (s *Shader) SetUniformMat4(name string, m mgl32.Mat4) {
	loc := s.UniformLocation(name)
	s.p.Call("glUniformMatrix4fv", func() { s.p.API.UniformMatrix4fv(loc, [16]float32(m)) })
}
