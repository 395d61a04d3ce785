package geometry

import (
	gomath "math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"

	"github.com/Faultbox/skysaver/pkg/math"
)

// MinSegments is the smallest number of points that still describes a circle.
const MinSegments = 3

// DiscretizeGreatCircle returns segments points on the circle of the given
// radius lying in the plane perpendicular to normal. Point 0 lies along
// zeroLongitudeRef and the points advance counter-clockwise about normal.
// The result is a closed loop: draw it as LineLoop, or with ClosedLoopIndices.
//
// zeroLongitudeRef does not have to be perpendicular to normal; only its
// in-plane component is used.
func DiscretizeGreatCircle(normal, zeroLongitudeRef r3.Vector, radius float64, segments int) ([]VertexRecord, error) {
	if segments < MinSegments {
		return nil, &ConfigError{Field: "segments", Value: segments, Rule: "must be >= 3"}
	}
	if !(radius > 0) || gomath.IsInf(radius, 0) {
		return nil, &ConfigError{Field: "radius", Value: radius, Rule: "must be a finite value > 0"}
	}
	if !finite(normal) {
		return nil, &ConfigError{Field: "normal", Value: normal, Rule: "must have finite components"}
	}
	if normal.Norm2() == 0 {
		return nil, &ConfigError{Field: "normal", Value: normal, Rule: "must be non-zero"}
	}
	if !finite(zeroLongitudeRef) {
		return nil, &ConfigError{Field: "zero longitude reference", Value: zeroLongitudeRef, Rule: "must have finite components"}
	}

	n := normal.Normalize()
	ref := zeroLongitudeRef.Sub(n.Mul(zeroLongitudeRef.Dot(n)))
	if ref.Norm() < 1e-9 {
		return nil, &ConfigError{Field: "zero longitude reference", Value: zeroLongitudeRef, Rule: "must not be parallel to the normal"}
	}
	ref = ref.Normalize()
	orthogonal := n.Cross(ref)

	points := make([]VertexRecord, segments)
	for i := range points {
		theta := s1.Angle(float64(i)/float64(segments)) * 360 * s1.Degree
		sin, cos := gomath.Sincos(theta.Radians())
		dir := ref.Mul(cos).Add(orthogonal.Mul(sin))
		points[i] = VertexRecord{
			TexCoord: math.Vec2{X: float32(i) / float32(segments)},
			Normal:   math.FromR3(dir),
			Position: math.FromR3(dir.Mul(radius)),
		}
	}
	return points, nil
}

func finite(v r3.Vector) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if gomath.IsNaN(c) || gomath.IsInf(c, 0) {
			return false
		}
	}
	return true
}
