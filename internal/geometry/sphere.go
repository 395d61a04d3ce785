package geometry

import (
	gomath "math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"

	"github.com/Faultbox/skysaver/pkg/math"
)

// Minimum tessellation counts. Anything lower produces a degenerate mesh.
const (
	MinSlices = 3
	MinStacks = 3
)

// SphereDescriptor describes a latitude/longitude sphere.
type SphereDescriptor struct {
	Radius float64
	Slices int // longitude divisions
	Stacks int // latitude divisions, each pole counted as one stack

	// Stagger offsets every odd stack by half a longitude step.
	Stagger bool
	// Stitch appends a seam duplicate with u = 1.0 to every non-pole stack.
	Stitch bool
}

// Validate returns a *ConfigError if d is below the documented minimums.
func (d SphereDescriptor) Validate() error {
	if !(d.Radius > 0) || gomath.IsInf(d.Radius, 0) {
		return &ConfigError{Field: "radius", Value: d.Radius, Rule: "must be a finite value > 0"}
	}
	if d.Slices < MinSlices {
		return &ConfigError{Field: "slices", Value: d.Slices, Rule: "must be >= 3"}
	}
	if d.Stacks < MinStacks {
		return &ConfigError{Field: "stacks", Value: d.Stacks, Rule: "must be >= 3"}
	}
	return nil
}

// RingLength is the number of vertices in each non-pole stack.
func (d SphereDescriptor) RingLength() int {
	if d.Stitch {
		return d.Slices + 1
	}
	return d.Slices
}

// VertexCount returns 2 + RingLength*(Stacks-2).
func (d SphereDescriptor) VertexCount() int {
	return 2 + d.RingLength()*(d.Stacks-2)
}

// Sphere is a tessellated sphere plus its two index groupings.
type Sphere struct {
	Descriptor SphereDescriptor
	Vertices   []VertexRecord

	// StackIndices holds one entry per stack, north pole first. Pole entries
	// have one element; rings are in increasing longitude order.
	StackIndices [][]uint32

	// SliceIndices holds one entry per meridian, prime meridian first, each
	// listing Stacks vertices from north pole to south pole. A stitched sphere
	// has one extra meridian made of the seam duplicates.
	SliceIndices [][]uint32
}

// Tessellate builds the vertices and index groupings for d.
func Tessellate(d SphereDescriptor) (*Sphere, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	latStep := 180.0 / float64(d.Stacks-1)
	lonStep := 360.0 / float64(d.Slices)
	lastStack := d.Stacks - 1

	s := &Sphere{
		Descriptor:   d,
		Vertices:     make([]VertexRecord, 0, d.VertexCount()),
		StackIndices: make([][]uint32, d.Stacks),
	}

	for stack := 0; stack < d.Stacks; stack++ {
		v := float32(stack) / float32(lastStack)

		if stack == 0 || stack == lastStack {
			dir := r3.Vector{Z: 1}
			if stack == lastStack {
				dir.Z = -1
			}
			s.StackIndices[stack] = []uint32{s.emit(dir, d.Radius, 0, v)}
			continue
		}

		lat := 90.0 - float64(stack)*latStep
		offset := 0.0
		if d.Stagger && stack%2 == 1 {
			offset = 0.5
		}

		ring := make([]uint32, 0, d.RingLength())
		for slice := 0; slice < d.Slices; slice++ {
			lon := gomath.Mod((float64(slice)+offset)*lonStep, 360)
			dir := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon)).Vector
			u := float32((float64(slice) + offset) / float64(d.Slices))
			ring = append(ring, s.emit(dir, d.Radius, u, v))
		}

		if d.Stitch {
			// u is pinned to 1.0 even on a staggered stack, whose first vertex
			// sits at lonStep/2. The closing quad there spans a full longitude
			// step but only half a step of texture.
			seam := s.Vertices[ring[0]]
			seam.TexCoord.X = 1.0
			ring = append(ring, uint32(len(s.Vertices)))
			s.Vertices = append(s.Vertices, seam)
		}
		s.StackIndices[stack] = ring
	}

	s.SliceIndices = make([][]uint32, d.RingLength())
	for meridian := range s.SliceIndices {
		column := make([]uint32, d.Stacks)
		for stack, ring := range s.StackIndices {
			if len(ring) == 1 {
				column[stack] = ring[0]
			} else {
				column[stack] = ring[meridian]
			}
		}
		s.SliceIndices[meridian] = column
	}

	return s, nil
}

// emit appends a vertex on the sphere in unit direction dir and returns its index.
func (s *Sphere) emit(dir r3.Vector, radius float64, u, v float32) uint32 {
	idx := uint32(len(s.Vertices))
	s.Vertices = append(s.Vertices, VertexRecord{
		TexCoord: math.Vec2{X: u, Y: v},
		Normal:   math.FromR3(dir),
		Position: math.FromR3(dir.Mul(radius)),
	})
	return idx
}

// NorthPole returns the index of the north pole vertex.
func (s *Sphere) NorthPole() uint32 {
	return s.StackIndices[0][0]
}

// SouthPole returns the index of the south pole vertex.
func (s *Sphere) SouthPole() uint32 {
	return s.StackIndices[len(s.StackIndices)-1][0]
}

// EquatorStack returns the stack lying exactly on the equator.
// Only spheres with an odd stack count have one.
func (s *Sphere) EquatorStack() (int, bool) {
	n := s.Descriptor.Stacks
	if n%2 == 0 {
		return 0, false
	}
	return (n - 1) / 2, true
}

// ring returns the distinct vertices of a non-pole stack, without the seam duplicate.
func (s *Sphere) ring(stack int) []uint32 {
	r := s.StackIndices[stack]
	if s.Descriptor.Stitch {
		return r[:len(r)-1]
	}
	return r
}
