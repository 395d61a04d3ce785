// Package sky assembles the planetarium scene from the geometry primitives:
// the celestial grid, the Earth globe, the ecliptic, constellations and stars.
package sky

import "github.com/Faultbox/skysaver/internal/config"

// Detail is the tessellation chosen for one quality level.
type Detail struct {
	GridSlices  int // celestial grid meridians
	GridStacks  int // odd, so the grid has an equator ring
	GlobeSlices int
	GlobeStacks int

	EclipticSegments int
}

var details = map[config.Quality]Detail{
	config.QualityLow: {
		GridSlices: 12, GridStacks: 7,
		GlobeSlices: 16, GlobeStacks: 9,
		EclipticSegments: 64,
	},
	config.QualityMedium: {
		GridSlices: 24, GridStacks: 13,
		GlobeSlices: 32, GlobeStacks: 17,
		EclipticSegments: 128,
	},
	config.QualityHigh: {
		GridSlices: 36, GridStacks: 19,
		GlobeSlices: 64, GlobeStacks: 33,
		EclipticSegments: 256,
	},
}

// DetailFor maps a quality level to tessellation counts.
// Unknown levels get the medium detail.
func DetailFor(q config.Quality) Detail {
	if d, ok := details[q]; ok {
		return d
	}
	return details[config.QualityMedium]
}
