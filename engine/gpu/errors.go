package gpu

import "errors"

var (
	ErrShaderSource  = errors.New("gpu: cannot read shader source")
	ErrShaderCompile = errors.New("gpu: shader compilation failed")
	ErrShaderLink    = errors.New("gpu: program link failed")
	ErrTextureDecode = errors.New("gpu: cannot decode texture image")
)
