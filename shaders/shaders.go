package shaders

import "embed"

// Names of the shader sources found in FS.
const (
	Vertex   = "hello-gl.v.glsl"
	Fragment = "hello-gl.f.glsl"
)

// FS embeds the vertex and fragment shader sources. They are compiled by the
// driver at start up, so editing them only needs a rebuild.
//
//go:embed hello-gl.v.glsl
//go:embed hello-gl.f.glsl
var FS embed.FS
