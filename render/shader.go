package render

import (
	"fmt"
	"strings"
)

// CompileError is returned when the driver rejects a shader source.
type CompileError struct {
	Stage Stage
	Name  string

	// Log is the driver's info log for the failed shader.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader %s:\n%s",
		e.Stage, e.Name, strings.TrimRight(e.Log, "\n"))
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link shader program:\n%s",
		strings.TrimRight(e.Log, "\n"))
}

// CompileShader creates a shader for stage and compiles source into it. name
// is only used in diagnostics.
//
// On failure the shader is deleted and a *CompileError carrying the info log
// is returned together with a zero handle.
func CompileShader(dev Device, stage Stage, name, source string) (Shader, error) {
	shader := dev.CreateShader(stage)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if !dev.ShaderCompileStatus(shader) {
		err := &CompileError{
			Stage: stage,
			Name:  name,
			Log:   dev.ShaderInfoLog(shader),
		}
		dev.DeleteShader(shader)
		return 0, err
	}

	return shader, nil
}

// LinkProgram links vertex and fragment into a new program. The shaders stay
// owned by the caller.
//
// On failure the program is deleted and a *LinkError is returned together
// with a zero handle.
func LinkProgram(dev Device, vertex, fragment Shader) (Program, error) {
	program := dev.CreateProgram()
	dev.AttachShader(program, vertex)
	dev.AttachShader(program, fragment)
	dev.LinkProgram(program)

	if !dev.ProgramLinkStatus(program) {
		err := &LinkError{Log: dev.ProgramInfoLog(program)}
		dev.DeleteProgram(program)
		return 0, err
	}

	return program, nil
}
