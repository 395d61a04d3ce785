package geometry

import (
	gomath "math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"go.uber.org/zap"

	"github.com/Faultbox/skysaver/internal/logger"
	"github.com/Faultbox/skysaver/pkg/math"
)

// Star is a named point on the celestial sphere.
type Star struct {
	RightAscension float64 // hours, [0, 24)
	Declination    float64 // degrees, [-90, 90]
	Magnitude      float64
	SpectralClass  string
	ProperName     string
}

// Direction returns the unit vector towards the star, with the celestial
// north pole on +Z and RA 0h on +X.
func (s Star) Direction() r3.Vector {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(s.Declination, s.RightAscension*15)).Vector
}

// Link joins two stars of the same group by their position in Stars.
type Link struct {
	A, B int
}

// PointGroup is one independent graph, e.g. a constellation.
type PointGroup struct {
	Name        string
	Description string
	Stars       []Star
	Links       []Link
}

// GroupRange locates one group inside a LinkGraph.
type GroupRange struct {
	Name        string
	FirstVertex int
	VertexCount int
	FirstIndex  int
	IndexCount  int
}

// LinkWarning describes input that was dropped while flattening.
type LinkWarning struct {
	Group  string
	Link   Link
	Reason string
}

// Warning reasons.
const (
	ReasonEmptyGroup   = "group has no stars"
	ReasonLinkOutRange = "link index out of range"
)

// LinkGraph is the flattened result of BuildLinkGraph.
type LinkGraph struct {
	Vertices []VertexRecord
	// Indices is a line list: every pair is one link.
	Indices  []uint32
	Groups   []GroupRange
	Warnings []LinkWarning
}

// BuildLinkGraph flattens groups into one vertex buffer and one line-list
// index buffer. Local link indices are offset by the number of vertices
// emitted before the group. Links referencing a star outside their own group
// are dropped and logged; empty groups are skipped and logged. Bad data in one
// group never affects another.
func BuildLinkGraph(groups []PointGroup, radius float64) *LinkGraph {
	starCount, linkCount := 0, 0
	for _, g := range groups {
		starCount += len(g.Stars)
		linkCount += len(g.Links)
	}

	lg := &LinkGraph{
		Vertices: make([]VertexRecord, 0, starCount),
		Indices:  make([]uint32, 0, 2*linkCount),
	}
	log := logger.Named("geometry")

	base := 0
	for _, g := range groups {
		if len(g.Stars) == 0 {
			lg.warn(log, LinkWarning{Group: g.Name, Reason: ReasonEmptyGroup}, zap.Int("links", len(g.Links)))
			continue
		}

		r := GroupRange{Name: g.Name, FirstVertex: base, VertexCount: len(g.Stars), FirstIndex: len(lg.Indices)}
		for _, star := range g.Stars {
			lg.Vertices = append(lg.Vertices, StarVertex(star, radius))
		}
		for _, l := range g.Links {
			if !inRange(l.A, len(g.Stars)) || !inRange(l.B, len(g.Stars)) {
				lg.warn(log, LinkWarning{Group: g.Name, Link: l, Reason: ReasonLinkOutRange}, zap.Int("stars", len(g.Stars)))
				continue
			}
			lg.Indices = append(lg.Indices, uint32(base+l.A), uint32(base+l.B))
		}
		r.IndexCount = len(lg.Indices) - r.FirstIndex
		lg.Groups = append(lg.Groups, r)

		base += len(g.Stars)
	}

	return lg
}

func (lg *LinkGraph) warn(log *zap.Logger, w LinkWarning, extra ...zap.Field) {
	lg.Warnings = append(lg.Warnings, w)
	fields := append([]zap.Field{
		zap.String("group", w.Group),
		zap.Int("a", w.Link.A),
		zap.Int("b", w.Link.B),
	}, extra...)
	log.Warn(w.Reason, fields...)
}

// StarVertex places a star on a sphere of the given radius. The texture
// coordinate is its equirectangular sky-map position.
func StarVertex(s Star, radius float64) VertexRecord {
	dir := s.Direction()
	u := gomath.Mod(s.RightAscension/24, 1)
	if u < 0 {
		u++
	}
	return VertexRecord{
		TexCoord: math.Vec2{X: float32(u), Y: float32((90 - s.Declination) / 180)},
		Normal:   math.FromR3(dir),
		Position: math.FromR3(dir.Mul(radius)),
	}
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
