package geometry

// Grid holds the line-list index arrays of a sphere's coordinate grid.
// Every array is a sequence of index pairs.
type Grid struct {
	// Latitudes are all non-polar rings except the equator, each closed.
	Latitudes []uint32
	// Meridians are all meridians except the prime meridian, pole to pole.
	Meridians []uint32
	// PrimeMeridian is meridian 0, pole to pole.
	PrimeMeridian []uint32
	// Equator is empty when the sphere has an even number of stacks.
	Equator []uint32
}

// GridLines builds the grid overlay for s. The prime meridian and the equator
// are kept out of the general arrays so they can be drawn with their own style.
// The seam meridian of a stitched sphere coincides with the prime meridian and
// is not drawn.
func (s *Sphere) GridLines() Grid {
	var g Grid

	equator, hasEquator := s.EquatorStack()
	for stack := 1; stack < len(s.StackIndices)-1; stack++ {
		if hasEquator && stack == equator {
			g.Equator = ringLines(nil, s.ring(stack))
			continue
		}
		g.Latitudes = ringLines(g.Latitudes, s.ring(stack))
	}

	g.PrimeMeridian = chainLines(nil, s.SliceIndices[0])
	for meridian := 1; meridian < s.Descriptor.Slices; meridian++ {
		g.Meridians = chainLines(g.Meridians, s.SliceIndices[meridian])
	}

	return g
}

// ringLines appends the closed ring as line pairs.
func ringLines(dst, ring []uint32) []uint32 {
	for i := range ring {
		dst = append(dst, ring[i], ring[(i+1)%len(ring)])
	}
	return dst
}

// chainLines appends the open chain as line pairs.
func chainLines(dst, chain []uint32) []uint32 {
	for i := 0; i+1 < len(chain); i++ {
		dst = append(dst, chain[i], chain[i+1])
	}
	return dst
}
