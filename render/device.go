// Package render holds the GL-agnostic core of the program: shader
// compilation, program linking, resource loading and drawing one frame.
//
// Everything talks to the GPU through Device, which the gldevice package
// implements on top of OpenGL 2.0.
package render

import "github.com/xlab/linmath"

// Handles to GPU objects. The zero value never names a live object.
type (
	Buffer  uint32
	Shader  uint32
	Program uint32
)

// Uniform and Attrib are variable locations inside a linked program. A
// location of -1 means the variable is not active in the program.
type (
	Uniform int32
	Attrib  int32
)

// Stage is the pipeline stage a shader is compiled for.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferTarget is the binding point a buffer is used with.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Primitive is the topology used by a draw call.
type Primitive int

const (
	TriangleStrip Primitive = iota
)

// IndexType is the element type of an element array buffer.
type IndexType int

const (
	UnsignedShort IndexType = iota
)

// Device is the subset of the GL API used by this package. Methods mirror
// their GL counterparts; calls are only valid on the thread owning the
// context.
type Device interface {
	// CreateBuffer generates a buffer, binds it to target and uploads data
	// with static draw usage.
	CreateBuffer(target BufferTarget, data []byte) Buffer
	BindBuffer(target BufferTarget, buffer Buffer)

	CreateShader(stage Stage) Shader
	ShaderSource(shader Shader, source string)
	CompileShader(shader Shader)
	ShaderCompileStatus(shader Shader) bool
	ShaderInfoLog(shader Shader) string
	DeleteShader(shader Shader)

	CreateProgram() Program
	AttachShader(program Program, shader Shader)
	LinkProgram(program Program)
	ProgramLinkStatus(program Program) bool
	ProgramInfoLog(program Program) string
	DeleteProgram(program Program)
	UseProgram(program Program)

	GetUniformLocation(program Program, name string) Uniform
	GetAttribLocation(program Program, name string) Attrib

	Uniform1f(location Uniform, v float32)
	Uniform1i(location Uniform, v int32)
	Uniform4f(location Uniform, v linmath.Vec4)

	// VertexAttribPointer describes attrib as size non-normalized floats per
	// vertex, read from the bound array buffer.
	VertexAttribPointer(attrib Attrib, size, stride int32, offset int)
	EnableVertexAttribArray(attrib Attrib)
	DisableVertexAttribArray(attrib Attrib)

	ClearColor(r, g, b, a float32)
	ClearColorBuffer()
	DrawElements(mode Primitive, count int32, typ IndexType, offset int)
}

// Swapper presents a finished frame. *glfw.Window implements it.
type Swapper interface {
	SwapBuffers()
}
