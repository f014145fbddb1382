// Package gldevice implements render.Device on OpenGL 2.1 through go-gl.
package gldevice

import (
	"fmt"
	"unsafe"

	"hello-gl/render"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/xlab/linmath"
)

// Device issues GL calls on the context current on the calling thread.
type Device struct{}

var _ render.Device = (*Device)(nil)

// New loads the GL function pointers. A GL context must be current.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	return &Device{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) CreateBuffer(target render.BufferTarget, data []byte) render.Buffer {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(bufferTarget(target), buffer)

	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(bufferTarget(target), len(data), ptr, gl.STATIC_DRAW)

	return render.Buffer(buffer)
}

func (d *Device) BindBuffer(target render.BufferTarget, buffer render.Buffer) {
	gl.BindBuffer(bufferTarget(target), uint32(buffer))
}

func (d *Device) CreateShader(stage render.Stage) render.Shader {
	return render.Shader(gl.CreateShader(shaderType(stage)))
}

func (d *Device) ShaderSource(shader render.Shader, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(shader), 1, csources, nil)
	free()
}

func (d *Device) CompileShader(shader render.Shader) {
	gl.CompileShader(uint32(shader))
}

func (d *Device) ShaderCompileStatus(shader render.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(shader render.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := make([]uint8, logLength+1)
	gl.GetShaderInfoLog(uint32(shader), logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Device) DeleteShader(shader render.Shader) {
	gl.DeleteShader(uint32(shader))
}

func (d *Device) CreateProgram() render.Program {
	return render.Program(gl.CreateProgram())
}

func (d *Device) AttachShader(program render.Program, shader render.Shader) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (d *Device) LinkProgram(program render.Program) {
	gl.LinkProgram(uint32(program))
}

func (d *Device) ProgramLinkStatus(program render.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(program render.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := make([]uint8, logLength+1)
	gl.GetProgramInfoLog(uint32(program), logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Device) DeleteProgram(program render.Program) {
	gl.DeleteProgram(uint32(program))
}

func (d *Device) UseProgram(program render.Program) {
	gl.UseProgram(uint32(program))
}

func (d *Device) GetUniformLocation(program render.Program, name string) render.Uniform {
	return render.Uniform(gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00")))
}

func (d *Device) GetAttribLocation(program render.Program, name string) render.Attrib {
	return render.Attrib(gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00")))
}

func (d *Device) Uniform1f(location render.Uniform, v float32) {
	gl.Uniform1f(int32(location), v)
}

func (d *Device) Uniform1i(location render.Uniform, v int32) {
	gl.Uniform1i(int32(location), v)
}

func (d *Device) Uniform4f(location render.Uniform, v linmath.Vec4) {
	gl.Uniform4f(int32(location), v[0], v[1], v[2], v[3])
}

func (d *Device) VertexAttribPointer(attrib render.Attrib, size, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(attrib), size, gl.FLOAT, false, stride, uintptr(offset))
}

func (d *Device) EnableVertexAttribArray(attrib render.Attrib) {
	gl.EnableVertexAttribArray(uint32(attrib))
}

func (d *Device) DisableVertexAttribArray(attrib render.Attrib) {
	gl.DisableVertexAttribArray(uint32(attrib))
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) ClearColorBuffer() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) DrawElements(mode render.Primitive, count int32, typ render.IndexType, offset int) {
	gl.DrawElementsWithOffset(primitive(mode), count, indexType(typ), uintptr(offset))
}

func bufferTarget(target render.BufferTarget) uint32 {
	switch target {
	case render.ArrayBuffer:
		return gl.ARRAY_BUFFER
	case render.ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	default:
		panic(fmt.Sprintf("unknown buffer target %d", target))
	}
}

func shaderType(stage render.Stage) uint32 {
	switch stage {
	case render.VertexStage:
		return gl.VERTEX_SHADER
	case render.FragmentStage:
		return gl.FRAGMENT_SHADER
	default:
		panic(fmt.Sprintf("unknown shader stage %s", stage))
	}
}

func primitive(mode render.Primitive) uint32 {
	switch mode {
	case render.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		panic(fmt.Sprintf("unknown primitive %d", mode))
	}
}

func indexType(typ render.IndexType) uint32 {
	switch typ {
	case render.UnsignedShort:
		return gl.UNSIGNED_SHORT
	default:
		panic(fmt.Sprintf("unknown index type %d", typ))
	}
}
