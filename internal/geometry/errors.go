package geometry

import "fmt"

// ConfigError reports a descriptor value below its documented minimum.
// It means the caller is misconfigured; no usable mesh exists for such input.
type ConfigError struct {
	Field string
	Value any
	Rule  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("geometry: invalid %s %v: %s", e.Field, e.Value, e.Rule)
}

// IndexRangeError reports an index that points past the end of a vertex buffer.
type IndexRangeError struct {
	Position    int
	Index       uint32
	VertexCount int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("geometry: index %d at position %d out of range for %d vertices",
		e.Index, e.Position, e.VertexCount)
}
