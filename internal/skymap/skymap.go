// Package skymap draws the line and point meshes of a sky scene as a flat
// equirectangular SVG chart.
package skymap

import (
	"fmt"
	"io"
	gomath "math"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/s2"

	"github.com/Faultbox/skysaver/internal/geometry"
	"github.com/Faultbox/skysaver/internal/sky"
	"github.com/Faultbox/skysaver/pkg/math"
)

const (
	backgroundStyle = "fill:rgb(5,5,20)"
	labelStyle      = "fill:rgb(200,200,220);font-size:11px;font-family:sans-serif"

	starRadius = 2
)

// Chart maps the celestial sphere onto a width x width/2 canvas. RA 0h is in
// the centre and RA grows to the left, as on a chart of the sky seen from Earth.
type Chart struct {
	Width, Height int
	proj          s2.Projection
	scale         float64
}

// NewChart creates a chart of the given width.
func NewChart(width int) *Chart {
	return &Chart{
		Width:  width,
		Height: width / 2,
		proj:   s2.NewPlateCarreeProjection(float64(width)),
		scale:  float64(width),
	}
}

// Project returns the canvas position of a direction.
func (c *Chart) Project(ll s2.LatLng) (int, int) {
	p := c.proj.FromLatLng(ll)
	x := 1 - (p.X+c.scale)/(2*c.scale)
	y := (c.scale/2 - p.Y) / c.scale
	return int(gomath.Round(x * float64(c.Width))), int(gomath.Round(y * float64(c.Height)))
}

// Render writes the scene as an SVG document. Triangle meshes are skipped.
func Render(w io.Writer, scene *sky.Scene, width int) error {
	if width < 2 {
		return fmt.Errorf("chart width %d too small", width)
	}
	c := NewChart(width)

	canvas := svg.New(w)
	canvas.Start(c.Width, c.Height)
	canvas.Rect(0, 0, c.Width, c.Height, backgroundStyle)

	for _, m := range scene.Meshes {
		canvas.Gid(m.Name)
		for _, b := range m.Batches {
			switch b.Kind {
			case geometry.LineList:
				c.lines(canvas, m.Vertices, b.Indices, 2, lineStyle(b.Color))
			case geometry.LineLoop:
				c.lines(canvas, m.Vertices, closeLoop(b.Indices), 1, lineStyle(b.Color))
			case geometry.Points:
				for _, idx := range b.Indices {
					x, y := c.Project(latLng(m.Vertices[idx].Position))
					canvas.Circle(x, y, starRadius, fillStyle(b.Color))
				}
			}
		}
		canvas.Gend()
	}

	if g := scene.Mesh(sky.MeshConstellations); g != nil {
		for _, r := range scene.Groups {
			if r.VertexCount == 0 {
				continue
			}
			x, y := c.Project(latLng(g.Vertices[r.FirstVertex].Position))
			canvas.Text(x+4, y-4, r.Name, labelStyle)
		}
	}

	canvas.End()
	return nil
}

// lines draws segments between indices i and i+1, advancing by step: 2 for
// line lists, 1 for strips. Segments that wrap around the chart edge are not drawn.
func (c *Chart) lines(canvas *svg.SVG, vertices []geometry.VertexRecord, indices []uint32, step int, style string) {
	for i := 0; i+1 < len(indices); i += step {
		a := latLng(vertices[indices[i]].Position)
		b := latLng(vertices[indices[i+1]].Position)

		// Poles have no longitude of their own.
		if isPole(a) {
			a.Lng = b.Lng
		}
		if isPole(b) {
			b.Lng = a.Lng
		}
		if gomath.Abs(a.Lng.Radians()-b.Lng.Radians()) > gomath.Pi {
			continue
		}

		x1, y1 := c.Project(a)
		x2, y2 := c.Project(b)
		canvas.Line(x1, y1, x2, y2, style)
	}
}

// closeLoop turns a loop into a strip that returns to its first index.
func closeLoop(loop []uint32) []uint32 {
	order := geometry.ClosedLoopIndices(len(loop))
	out := make([]uint32, len(order))
	for i, k := range order {
		out[i] = loop[k]
	}
	return out
}

func latLng(p math.Vec3) s2.LatLng {
	return s2.LatLngFromPoint(s2.PointFromCoords(float64(p.X), float64(p.Y), float64(p.Z)))
}

func isPole(ll s2.LatLng) bool {
	return gomath.Abs(ll.Lat.Degrees()) > 90-1e-6
}

func lineStyle(c [4]float32) string {
	return fmt.Sprintf("stroke:%s;stroke-opacity:%.2f;stroke-width:1;fill:none", rgb(c), c[3])
}

func fillStyle(c [4]float32) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.2f", rgb(c), c[3])
}

func rgb(c [4]float32) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", channel(c[0]), channel(c[1]), channel(c[2]))
}

func channel(v float32) int {
	return int(gomath.Round(float64(max(0, min(1, v))) * 255))
}
