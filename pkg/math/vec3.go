// Package math provides the float32 vector types stored in GPU vertex buffers.
//
// Geometry is computed in float64 with github.com/golang/geo/r3 and narrowed
// to these types only when a vertex is written. Arithmetic goes through R3.
package math

import (
	"github.com/golang/geo/r3"
)

// Vec3 is a 3D vector with the memory layout of three consecutive GL floats.
type Vec3 struct {
	X, Y, Z float32
}

// FromR3 narrows a float64 vector to a Vec3.
func FromR3(v r3.Vector) Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// R3 widens v to a float64 vector.
func (v Vec3) R3() r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
