package render

import (
	"fmt"
	"io/fs"

	"hello-gl/shaders"
	"hello-gl/unsafer"
)

// Names of the variables looked up in the linked program.
const (
	numBallsUniform = "numballs"
	timeUniform     = "time"
	ballUniform     = "ball"
	positionAttrib  = "position"
)

// Resources is every GPU object the renderer needs. It is created once by
// LoadResources and is read only afterwards.
type Resources struct {
	VertexBuffer  Buffer
	ElementBuffer Buffer

	VertexShader   Shader
	FragmentShader Shader
	Program        Program

	Uniforms struct {
		Ball     [MaxBalls]Uniform
		NumBalls Uniform
		Time     Uniform
	}

	Attributes struct {
		Position Attrib
	}
}

// BallUniformName returns the name of the i-th element of the ball uniform
// array, e.g. "ball[3]".
func BallUniformName(i int) string {
	return fmt.Sprintf("%s[%d]", ballUniform, i)
}

// LoadResources uploads the quad, compiles the shaders found in sources and
// links them. It returns a fully populated Resources or an error; a shader
// file that cannot be read fails the load the same way a compile error does.
func LoadResources(dev Device, sources fs.FS) (*Resources, error) {
	res := &Resources{}

	vertices := QuadVertices()
	res.VertexBuffer = dev.CreateBuffer(ArrayBuffer, unsafer.SliceToBytes(vertices[:]))

	elements := QuadElements()
	res.ElementBuffer = dev.CreateBuffer(ElementArrayBuffer, unsafer.SliceToBytes(elements[:]))

	var err error
	res.VertexShader, err = loadShader(dev, sources, VertexStage, shaders.Vertex)
	if err != nil {
		return nil, err
	}

	res.FragmentShader, err = loadShader(dev, sources, FragmentStage, shaders.Fragment)
	if err != nil {
		return nil, err
	}

	res.Program, err = LinkProgram(dev, res.VertexShader, res.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("making program: %w", err)
	}

	res.Uniforms.NumBalls = dev.GetUniformLocation(res.Program, numBallsUniform)
	res.Uniforms.Time = dev.GetUniformLocation(res.Program, timeUniform)
	for i := range res.Uniforms.Ball {
		res.Uniforms.Ball[i] = dev.GetUniformLocation(res.Program, BallUniformName(i))
	}

	res.Attributes.Position = dev.GetAttribLocation(res.Program, positionAttrib)

	return res, nil
}

func loadShader(dev Device, sources fs.FS, stage Stage, name string) (Shader, error) {
	source, err := fs.ReadFile(sources, name)
	if err != nil {
		return 0, fmt.Errorf("reading %s shader: %w", stage, err)
	}

	shader, err := CompileShader(dev, stage, name, string(source))
	if err != nil {
		return 0, fmt.Errorf("making %s shader: %w", stage, err)
	}

	return shader, nil
}
