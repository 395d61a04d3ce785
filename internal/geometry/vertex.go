// Package geometry builds CPU-side vertex and index buffers for the sky scene:
// tessellated spheres, their cap/waist/grid index arrays, great circles and
// flattened constellation link graphs.
//
// Nothing in this package touches the GPU. Results are plain slices laid out
// so a render target can copy them byte-for-byte.
package geometry

import (
	"github.com/Faultbox/skysaver/pkg/math"
)

// Interleaved vertex layout (GL_T2F_N3F_V3F). Both VertexRecord and the render
// target's attribute setup are derived from these constants.
const (
	TexCoordComponents = 2
	NormalComponents   = 3
	PositionComponents = 3
	FloatsPerVertex    = TexCoordComponents + NormalComponents + PositionComponents

	BytesPerFloat = 4
	VertexStride  = FloatsPerVertex * BytesPerFloat

	TexCoordOffset = 0
	NormalOffset   = TexCoordOffset + TexCoordComponents*BytesPerFloat
	PositionOffset = NormalOffset + NormalComponents*BytesPerFloat

	// IndexSize is the size of one element in an index buffer (uint32).
	IndexSize = 4
)

// VertexRecord is one interleaved vertex. Field order is part of the layout.
type VertexRecord struct {
	TexCoord math.Vec2
	Normal   math.Vec3
	Position math.Vec3
}

// Floats flattens vertices into the interleaved float stream, FloatsPerVertex per vertex.
func Floats(vertices []VertexRecord) []float32 {
	out := make([]float32, 0, len(vertices)*FloatsPerVertex)
	for _, v := range vertices {
		out = append(out,
			v.TexCoord.X, v.TexCoord.Y,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.Position.X, v.Position.Y, v.Position.Z,
		)
	}
	return out
}

// PrimitiveKind tells the render target how to assemble an index array.
type PrimitiveKind int

const (
	TriangleFan PrimitiveKind = iota
	TriangleStrip
	LineList
	LineLoop
	Points
)

func (k PrimitiveKind) String() string {
	switch k {
	case TriangleFan:
		return "triangle-fan"
	case TriangleStrip:
		return "triangle-strip"
	case LineList:
		return "line-list"
	case LineLoop:
		return "line-loop"
	case Points:
		return "points"
	default:
		return "unknown"
	}
}

// IndexBatch is one index array plus the primitive it describes.
type IndexBatch struct {
	Kind    PrimitiveKind
	Indices []uint32
	Color   [4]float32
	Tag     string // e.g. "north-cap", "equator", a constellation name
}

// CheckBounds returns an error if any index is >= vertexCount.
func CheckBounds(indices []uint32, vertexCount int) error {
	for i, idx := range indices {
		if int64(idx) >= int64(vertexCount) {
			return &IndexRangeError{Position: i, Index: idx, VertexCount: vertexCount}
		}
	}
	return nil
}

// SequentialIndices returns 0..n-1, the index array of a closed line loop or a point list.
func SequentialIndices(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}

// ClosedLoopIndices returns 0..n-1 followed by 0, for targets without a line-loop primitive.
func ClosedLoopIndices(n int) []uint32 {
	if n == 0 {
		return nil
	}
	return append(SequentialIndices(n), 0)
}

// BatchRange locates one batch inside a packed index buffer.
type BatchRange struct {
	Kind  PrimitiveKind
	First int // element offset
	Count int
	Color [4]float32
	Tag   string
}

// ByteOffset returns the offset of the first index in bytes.
func (r BatchRange) ByteOffset() int {
	return r.First * IndexSize
}

// PackBatches concatenates the index arrays of batches into one buffer, so a
// mesh needs a single element buffer. Empty batches get no range.
func PackBatches(batches []IndexBatch) ([]uint32, []BatchRange) {
	total := 0
	for _, b := range batches {
		total += len(b.Indices)
	}

	indices := make([]uint32, 0, total)
	ranges := make([]BatchRange, 0, len(batches))
	for _, b := range batches {
		if len(b.Indices) == 0 {
			continue
		}
		ranges = append(ranges, BatchRange{Kind: b.Kind, First: len(indices), Count: len(b.Indices), Color: b.Color, Tag: b.Tag})
		indices = append(indices, b.Indices...)
	}
	return indices, ranges
}
