package sky

import "github.com/Faultbox/skysaver/internal/geometry"

// Target receives finished meshes. The GL renderer is one; tools that only
// inspect geometry are others.
//
// Accept takes ownership of both slices. Every index in batches is smaller
// than len(vertices).
type Target interface {
	Accept(name string, vertices []geometry.VertexRecord, batches []geometry.IndexBatch) error
}
