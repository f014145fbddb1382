package render

import "github.com/xlab/linmath"

const (
	// MaxBalls is the size of the ball uniform array in the fragment shader.
	MaxBalls = 10

	// ActiveBalls is how many ball slots are written every frame.
	ActiveBalls = 5
)

// QuadVertices returns the corners of the full-screen quad in normalized
// device coordinates, in triangle strip order.
func QuadVertices() [4]linmath.Vec2 {
	return [4]linmath.Vec2{
		{-1, -1},
		{1, -1},
		{-1, 1},
		{1, 1},
	}
}

// QuadElements returns the element indices drawing QuadVertices as a
// triangle strip.
func QuadElements() [4]uint16 {
	return [4]uint16{0, 1, 2, 3}
}

// Balls returns the per-frame values of the active ball uniforms: orbit
// extent x and y, radius, orbit speed.
func Balls() [ActiveBalls]linmath.Vec4 {
	return [ActiveBalls]linmath.Vec4{
		{1.0, 1.0, 1.0, 1.2},
		{0.4, 0.7, 0.5, 1.1},
		{0.2, 0.1, 1.2, 0.9},
		{0.8, -0.4, 1.1, 1.5},
		{0.4, -0.9, 1.1, 0.8},
	}
}
