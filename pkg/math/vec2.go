package math

// Vec2 is a 2D vector. Vertex buffers use it for (u, v) texture coordinates.
type Vec2 struct {
	X, Y float32
}
