package geometry

// NorthCap returns the triangle-fan indices covering the north pole:
// the pole, then the first ring in increasing longitude. Seen from outside
// the sphere the triangles wind counter-clockwise.
//
// Unstitched rings are closed by repeating their first vertex. On a stitched
// sphere the seam duplicate already closes the fan.
func (s *Sphere) NorthCap() []uint32 {
	ring := s.StackIndices[1]
	fan := make([]uint32, 0, len(ring)+2)
	fan = append(fan, s.NorthPole())
	fan = append(fan, ring...)
	if !s.Descriptor.Stitch {
		fan = append(fan, ring[0])
	}
	return fan
}

// SouthCap returns the triangle-fan indices covering the south pole.
// The last ring is walked in decreasing longitude so the fan stays
// counter-clockwise when seen from below.
func (s *Sphere) SouthCap() []uint32 {
	ring := s.StackIndices[len(s.StackIndices)-2]
	fan := make([]uint32, 0, len(ring)+2)
	fan = append(fan, s.SouthPole())
	for i := len(ring) - 1; i >= 0; i-- {
		fan = append(fan, ring[i])
	}
	if !s.Descriptor.Stitch {
		fan = append(fan, ring[len(ring)-1])
	}
	return fan
}

// WaistStrips returns one triangle strip per band between two adjacent
// non-pole stacks, interleaving upper[i], lower[i]. Spheres with three stacks
// have no bands.
func (s *Sphere) WaistStrips() [][]uint32 {
	first, last := 1, len(s.StackIndices)-2
	if last <= first {
		return nil
	}

	strips := make([][]uint32, 0, last-first)
	for k := first; k < last; k++ {
		upper, lower := s.StackIndices[k], s.StackIndices[k+1]
		strip := make([]uint32, 0, 2*len(upper)+2)
		for i := range upper {
			strip = append(strip, upper[i], lower[i])
		}
		if !s.Descriptor.Stitch {
			strip = append(strip, upper[0], lower[0])
		}
		strips = append(strips, strip)
	}
	return strips
}

// JoinStrips concatenates triangle strips into one, bridging them with
// degenerate triangles. Every input strip must have even length so the
// winding parity of the next strip is preserved.
func JoinStrips(strips [][]uint32) []uint32 {
	total := 0
	for _, st := range strips {
		total += len(st) + 2
	}

	out := make([]uint32, 0, total)
	for i, st := range strips {
		if len(st) == 0 {
			continue
		}
		if i > 0 && len(out) > 0 {
			out = append(out, out[len(out)-1], st[0])
		}
		out = append(out, st...)
	}
	return out
}
