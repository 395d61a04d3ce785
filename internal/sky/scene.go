package sky

import (
	"fmt"
	gomath "math"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"github.com/Faultbox/skysaver/internal/config"
	"github.com/Faultbox/skysaver/internal/geometry"
	"github.com/Faultbox/skysaver/internal/logger"
)

// Mesh names, in submission order.
const (
	MeshGrid           = "celestial-grid"
	MeshGlobe          = "globe"
	MeshEcliptic       = "ecliptic"
	MeshConstellations = "constellations"
	MeshStars          = "stars"
)

// Obliquity is the tilt of the ecliptic against the celestial equator, in degrees.
const Obliquity = 23.44

// Batch colours (RGBA).
var (
	ColorLatitude      = [4]float32{0.25, 0.35, 0.55, 0.45}
	ColorMeridian      = [4]float32{0.25, 0.35, 0.55, 0.45}
	ColorPrimeMeridian = [4]float32{0.95, 0.6, 0.2, 0.8}
	ColorEquator       = [4]float32{0.3, 0.8, 0.9, 0.8}
	ColorGlobe         = [4]float32{0.12, 0.3, 0.55, 1}
	ColorEcliptic      = [4]float32{0.9, 0.8, 0.2, 0.7}
	ColorConstellation = [4]float32{0.6, 0.7, 1, 0.6}
	ColorStar          = [4]float32{1, 1, 0.95, 1}
)

// Options control what Build produces.
type Options struct {
	Quality config.Quality

	// Globe tessellation flags. The celestial grid is never stitched: its
	// seam meridian would only duplicate the prime meridian.
	Stagger bool
	Stitch  bool

	SphereRadius float64
	GlobeRadius  float64

	// Catalog may be nil; no constellations or stars are drawn then.
	Catalog *Catalog

	ShowGrid           bool
	ShowGlobe          bool
	ShowEcliptic       bool
	ShowConstellations bool
	ShowStars          bool
}

// OptionsFromConfig copies the scene settings.
func OptionsFromConfig(cfg config.SceneConfig, cat *Catalog) Options {
	return Options{
		Quality:            cfg.Quality,
		Stagger:            cfg.Stagger,
		Stitch:             cfg.Stitch,
		SphereRadius:       cfg.SphereRadius,
		GlobeRadius:        cfg.GlobeRadius,
		Catalog:            cat,
		ShowGrid:           cfg.ShowGrid,
		ShowGlobe:          cfg.ShowGlobe,
		ShowEcliptic:       cfg.ShowEcliptic,
		ShowConstellations: cfg.ShowConstellations,
		ShowStars:          cfg.ShowStars,
	}
}

// Mesh is one vertex buffer and the batches drawn from it.
type Mesh struct {
	Name     string
	Vertices []geometry.VertexRecord
	Batches  []geometry.IndexBatch
}

// IndexCount returns the number of indices over all batches.
func (m *Mesh) IndexCount() int {
	n := 0
	for _, b := range m.Batches {
		n += len(b.Indices)
	}
	return n
}

// Scene is a complete set of meshes built from one quality level.
type Scene struct {
	Quality config.Quality
	Detail  Detail
	Meshes  []*Mesh

	// Groups locates each constellation inside the constellations mesh.
	Groups   []geometry.GroupRange
	Warnings []geometry.LinkWarning
}

// Mesh returns the mesh with the given name, or nil.
func (s *Scene) Mesh(name string) *Mesh {
	for _, m := range s.Meshes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Build creates every enabled mesh. A bad quality level or radius is
// returned as a *geometry.ConfigError.
func Build(opts Options) (*Scene, error) {
	if !opts.Quality.Valid() {
		return nil, &geometry.ConfigError{Field: "quality", Value: opts.Quality, Rule: "must be low, medium or high"}
	}

	detail := DetailFor(opts.Quality)
	s := &Scene{Quality: opts.Quality, Detail: detail}

	if opts.ShowGrid {
		m, err := buildGrid(opts.SphereRadius, detail)
		if err != nil {
			return nil, fmt.Errorf("celestial grid: %w", err)
		}
		s.add(m)
	}
	if opts.ShowGlobe {
		m, err := buildGlobe(opts, detail)
		if err != nil {
			return nil, fmt.Errorf("globe: %w", err)
		}
		s.add(m)
	}
	if opts.ShowEcliptic {
		m, err := buildEcliptic(opts.SphereRadius, detail)
		if err != nil {
			return nil, fmt.Errorf("ecliptic: %w", err)
		}
		s.add(m)
	}
	if opts.Catalog != nil && opts.ShowConstellations {
		lg := geometry.BuildLinkGraph(opts.Catalog.Groups(), opts.SphereRadius)
		s.Groups = lg.Groups
		s.Warnings = lg.Warnings
		s.add(constellationMesh(lg))
	}
	if opts.Catalog != nil && opts.ShowStars {
		s.add(starMesh(opts.Catalog, opts.SphereRadius))
	}

	for _, m := range s.Meshes {
		for _, b := range m.Batches {
			if err := geometry.CheckBounds(b.Indices, len(m.Vertices)); err != nil {
				return nil, fmt.Errorf("%s/%s: %w", m.Name, b.Tag, err)
			}
		}
	}

	logger.Named("sky").Debug("scene built",
		zap.String("quality", opts.Quality.String()),
		zap.Int("meshes", len(s.Meshes)),
		zap.Int("warnings", len(s.Warnings)),
	)
	return s, nil
}

// add appends m unless it has nothing to draw.
func (s *Scene) add(m *Mesh) {
	if len(m.Vertices) == 0 || len(m.Batches) == 0 {
		return
	}
	s.Meshes = append(s.Meshes, m)
}

func buildGrid(radius float64, d Detail) (*Mesh, error) {
	sphere, err := geometry.Tessellate(geometry.SphereDescriptor{
		Radius: radius,
		Slices: d.GridSlices,
		Stacks: d.GridStacks,
	})
	if err != nil {
		return nil, err
	}

	g := sphere.GridLines()
	m := &Mesh{Name: MeshGrid, Vertices: sphere.Vertices}
	m.batch(geometry.LineList, g.Latitudes, ColorLatitude, "latitudes")
	m.batch(geometry.LineList, g.Meridians, ColorMeridian, "meridians")
	m.batch(geometry.LineList, g.PrimeMeridian, ColorPrimeMeridian, "prime-meridian")
	m.batch(geometry.LineList, g.Equator, ColorEquator, "equator")
	return m, nil
}

func buildGlobe(opts Options, d Detail) (*Mesh, error) {
	sphere, err := geometry.Tessellate(geometry.SphereDescriptor{
		Radius:  opts.GlobeRadius,
		Slices:  d.GlobeSlices,
		Stacks:  d.GlobeStacks,
		Stagger: opts.Stagger,
		Stitch:  opts.Stitch,
	})
	if err != nil {
		return nil, err
	}

	m := &Mesh{Name: MeshGlobe, Vertices: sphere.Vertices}
	m.batch(geometry.TriangleFan, sphere.NorthCap(), ColorGlobe, "north-cap")
	m.batch(geometry.TriangleFan, sphere.SouthCap(), ColorGlobe, "south-cap")
	m.batch(geometry.TriangleStrip, geometry.JoinStrips(sphere.WaistStrips()), ColorGlobe, "waist")
	return m, nil
}

// EclipticNormal is the ecliptic pole in equatorial coordinates.
func EclipticNormal() r3.Vector {
	sin, cos := gomath.Sincos(Obliquity * gomath.Pi / 180)
	return r3.Vector{Y: -sin, Z: cos}
}

func buildEcliptic(radius float64, d Detail) (*Mesh, error) {
	// Longitude 0 of the ecliptic is the vernal equinox, RA 0h on +X.
	points, err := geometry.DiscretizeGreatCircle(EclipticNormal(), r3.Vector{X: 1}, radius, d.EclipticSegments)
	if err != nil {
		return nil, err
	}

	m := &Mesh{Name: MeshEcliptic, Vertices: points}
	m.batch(geometry.LineLoop, geometry.SequentialIndices(len(points)), ColorEcliptic, "ecliptic")
	return m, nil
}

func constellationMesh(lg *geometry.LinkGraph) *Mesh {
	m := &Mesh{Name: MeshConstellations, Vertices: lg.Vertices}
	for _, g := range lg.Groups {
		m.batch(geometry.LineList, lg.Indices[g.FirstIndex:g.FirstIndex+g.IndexCount], ColorConstellation, g.Name)
	}
	return m
}

func starMesh(cat *Catalog, radius float64) *Mesh {
	m := &Mesh{Name: MeshStars, Vertices: make([]geometry.VertexRecord, 0, cat.StarCount())}
	for _, g := range cat.Groups() {
		for _, star := range g.Stars {
			m.Vertices = append(m.Vertices, geometry.StarVertex(star, radius))
		}
	}
	m.batch(geometry.Points, geometry.SequentialIndices(len(m.Vertices)), ColorStar, "stars")
	return m
}

// batch appends a batch, skipping empty index arrays.
func (m *Mesh) batch(kind geometry.PrimitiveKind, indices []uint32, color [4]float32, tag string) {
	if len(indices) == 0 {
		return
	}
	m.Batches = append(m.Batches, geometry.IndexBatch{Kind: kind, Indices: indices, Color: color, Tag: tag})
}

// Submit hands every mesh to t in order.
func (s *Scene) Submit(t Target) error {
	for _, m := range s.Meshes {
		if err := t.Accept(m.Name, m.Vertices, m.Batches); err != nil {
			return fmt.Errorf("submitting %s: %w", m.Name, err)
		}
	}
	return nil
}

// MeshStats counts one mesh.
type MeshStats struct {
	Name     string
	Vertices int
	Indices  int
	Batches  int
}

// Stats summarises a scene.
type Stats struct {
	Quality  config.Quality
	Meshes   []MeshStats
	Vertices int
	Indices  int
	Warnings int
}

// Stats counts vertices and indices per mesh.
func (s *Scene) Stats() Stats {
	st := Stats{Quality: s.Quality, Warnings: len(s.Warnings)}
	for _, m := range s.Meshes {
		ms := MeshStats{Name: m.Name, Vertices: len(m.Vertices), Indices: m.IndexCount(), Batches: len(m.Batches)}
		st.Meshes = append(st.Meshes, ms)
		st.Vertices += ms.Vertices
		st.Indices += ms.Indices
	}
	return st
}

// Release drops the CPU copies of all meshes. Call it after Submit once the
// target has uploaded them.
func (s *Scene) Release() {
	for _, m := range s.Meshes {
		m.Vertices = nil
		m.Batches = nil
	}
	s.Meshes = nil
}
