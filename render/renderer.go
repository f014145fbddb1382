package render

import (
	"time"
	"unsafe"
)

const (
	// positionSize is the number of floats per vertex position.
	positionSize = 2

	positionStride = positionSize * int32(unsafe.Sizeof(float32(0)))
)

// Renderer draws the metaballs quad. It owns the elapsed time fed to the
// shader but none of the GPU objects it draws with.
//
// A Renderer is not safe for concurrent use; Advance and RenderFrame are
// expected to be called from the thread owning the GL context.
type Renderer struct {
	dev    Device
	res    *Resources
	target Swapper

	localTime float32
	redraw    bool
}

// NewRenderer returns a Renderer drawing res through dev and presenting each
// frame to target.
func NewRenderer(dev Device, res *Resources, target Swapper) *Renderer {
	return &Renderer{
		dev:    dev,
		res:    res,
		target: target,
	}
}

// Advance stores the time elapsed since program start, truncated to whole
// milliseconds, and requests a redraw.
func (r *Renderer) Advance(elapsed time.Duration) {
	r.localTime = float32(elapsed.Milliseconds())
	r.redraw = true
}

// LocalTime returns the value passed to the time uniform, in milliseconds.
func (r *Renderer) LocalTime() float32 {
	return r.localTime
}

// RedrawRequested reports whether Advance was called since the last call to
// RedrawRequested, and clears the request.
func (r *Renderer) RedrawRequested() bool {
	requested := r.redraw
	r.redraw = false
	return requested
}

// RenderFrame draws one frame and swaps buffers. Only the first ActiveBalls
// ball uniforms are written.
func (r *Renderer) RenderFrame() {
	dev, res := r.dev, r.res

	dev.ClearColor(0, 0, 0, 0)
	dev.ClearColorBuffer()
	dev.UseProgram(res.Program)

	dev.Uniform1f(res.Uniforms.Time, r.localTime)
	dev.Uniform1i(res.Uniforms.NumBalls, ActiveBalls)
	for i, ball := range Balls() {
		dev.Uniform4f(res.Uniforms.Ball[i], ball)
	}

	dev.BindBuffer(ArrayBuffer, res.VertexBuffer)
	dev.VertexAttribPointer(res.Attributes.Position, positionSize, positionStride, 0)
	dev.EnableVertexAttribArray(res.Attributes.Position)

	elements := QuadElements()
	dev.BindBuffer(ElementArrayBuffer, res.ElementBuffer)
	dev.DrawElements(TriangleStrip, int32(len(elements)), UnsignedShort, 0)

	dev.DisableVertexAttribArray(res.Attributes.Position)
	r.target.SwapBuffers()
}
