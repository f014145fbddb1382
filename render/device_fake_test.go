package render

import (
	"fmt"
	"strings"

	"github.com/xlab/linmath"
)

// fakeDevice records every call as a line of text and hands out increasing
// handles. Shaders whose source contains failMarker fail to compile; the
// program fails to link when failLink is set.
type fakeDevice struct {
	calls []string

	failLink bool

	next     uint32
	sources  map[Shader]string
	compiled map[Shader]bool
	linked   map[Program]bool
	deleted  map[uint32]bool
	buffers  map[Buffer][]byte
	uniforms map[string]Uniform
}

const failMarker = "#error"

var _ Device = (*fakeDevice)(nil)

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		sources:  make(map[Shader]string),
		compiled: make(map[Shader]bool),
		linked:   make(map[Program]bool),
		deleted:  make(map[uint32]bool),
		buffers:  make(map[Buffer][]byte),
		uniforms: make(map[string]Uniform),
	}
}

func (f *fakeDevice) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeDevice) handle() uint32 {
	f.next++
	return f.next
}

// reset forgets the calls recorded so far.
func (f *fakeDevice) reset() {
	f.calls = nil
}

func (f *fakeDevice) CreateBuffer(target BufferTarget, data []byte) Buffer {
	b := Buffer(f.handle())
	f.buffers[b] = append([]byte(nil), data...)
	f.record("CreateBuffer(%d, %d bytes) = %d", target, len(data), b)
	return b
}

func (f *fakeDevice) BindBuffer(target BufferTarget, buffer Buffer) {
	f.record("BindBuffer(%d, %d)", target, buffer)
}

func (f *fakeDevice) CreateShader(stage Stage) Shader {
	s := Shader(f.handle())
	f.record("CreateShader(%s) = %d", stage, s)
	return s
}

func (f *fakeDevice) ShaderSource(shader Shader, source string) {
	f.sources[shader] = source
	f.record("ShaderSource(%d)", shader)
}

func (f *fakeDevice) CompileShader(shader Shader) {
	f.compiled[shader] = !strings.Contains(f.sources[shader], failMarker)
	f.record("CompileShader(%d)", shader)
}

func (f *fakeDevice) ShaderCompileStatus(shader Shader) bool {
	return f.compiled[shader]
}

func (f *fakeDevice) ShaderInfoLog(shader Shader) string {
	return fmt.Sprintf("0:1(1): error: shader %d rejected\n", shader)
}

func (f *fakeDevice) DeleteShader(shader Shader) {
	f.deleted[uint32(shader)] = true
	f.record("DeleteShader(%d)", shader)
}

func (f *fakeDevice) CreateProgram() Program {
	p := Program(f.handle())
	f.record("CreateProgram() = %d", p)
	return p
}

func (f *fakeDevice) AttachShader(program Program, shader Shader) {
	f.record("AttachShader(%d, %d)", program, shader)
}

func (f *fakeDevice) LinkProgram(program Program) {
	f.linked[program] = !f.failLink
	f.record("LinkProgram(%d)", program)
}

func (f *fakeDevice) ProgramLinkStatus(program Program) bool {
	return f.linked[program]
}

func (f *fakeDevice) ProgramInfoLog(program Program) string {
	return "error: unresolved varying\n"
}

func (f *fakeDevice) DeleteProgram(program Program) {
	f.deleted[uint32(program)] = true
	f.record("DeleteProgram(%d)", program)
}

func (f *fakeDevice) UseProgram(program Program) {
	f.record("UseProgram(%d)", program)
}

// GetUniformLocation hands out one location per distinct name.
func (f *fakeDevice) GetUniformLocation(program Program, name string) Uniform {
	loc, ok := f.uniforms[name]
	if !ok {
		loc = Uniform(len(f.uniforms))
		f.uniforms[name] = loc
	}
	f.record("GetUniformLocation(%d, %s) = %d", program, name, loc)
	return loc
}

func (f *fakeDevice) GetAttribLocation(program Program, name string) Attrib {
	f.record("GetAttribLocation(%d, %s) = 0", program, name)
	return 0
}

func (f *fakeDevice) Uniform1f(location Uniform, v float32) {
	f.record("Uniform1f(%d, %g)", location, v)
}

func (f *fakeDevice) Uniform1i(location Uniform, v int32) {
	f.record("Uniform1i(%d, %d)", location, v)
}

func (f *fakeDevice) Uniform4f(location Uniform, v linmath.Vec4) {
	f.record("Uniform4f(%d, %g, %g, %g, %g)", location, v[0], v[1], v[2], v[3])
}

func (f *fakeDevice) VertexAttribPointer(attrib Attrib, size, stride int32, offset int) {
	f.record("VertexAttribPointer(%d, %d, %d, %d)", attrib, size, stride, offset)
}

func (f *fakeDevice) EnableVertexAttribArray(attrib Attrib) {
	f.record("EnableVertexAttribArray(%d)", attrib)
}

func (f *fakeDevice) DisableVertexAttribArray(attrib Attrib) {
	f.record("DisableVertexAttribArray(%d)", attrib)
}

func (f *fakeDevice) ClearColor(r, g, b, a float32) {
	f.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (f *fakeDevice) ClearColorBuffer() {
	f.record("ClearColorBuffer()")
}

func (f *fakeDevice) DrawElements(mode Primitive, count int32, typ IndexType, offset int) {
	f.record("DrawElements(%d, %d, %d, %d)", mode, count, typ, offset)
}

// fakeWindow counts presented frames and logs them into the device's call
// list so ordering can be checked.
type fakeWindow struct {
	dev   *fakeDevice
	swaps int
}

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	w.dev.record("SwapBuffers()")
}
