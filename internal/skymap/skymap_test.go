package skymap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/s2"

	"github.com/Faultbox/skysaver/internal/config"
	"github.com/Faultbox/skysaver/internal/sky"
)

func TestChartProject(t *testing.T) {
	c := NewChart(1000)

	tests := []struct {
		name         string
		lat, lng     float64
		wantX, wantY int
	}{
		{"origin", 0, 0, 500, 250},
		{"north pole", 90, 0, 500, 0},
		{"south pole", -90, 0, 500, 500},
		{"RA 6h is left of centre", 0, 90, 250, 250},
		{"RA 18h is right of centre", 0, -90, 750, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := c.Project(s2.LatLngFromDegrees(tt.lat, tt.lng))
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Project(%v, %v) = (%d, %d), want (%d, %d)", tt.lat, tt.lng, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRender(t *testing.T) {
	cat, err := sky.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	scene, err := sky.Build(sky.OptionsFromConfig(config.Default().Scene, cat))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, scene, 1200); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<svg`) || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("output is not an SVG document:\n%.200s", out)
	}
	if got := strings.Count(out, "<circle"); got != cat.StarCount() {
		t.Errorf("expected %d stars, got %d", cat.StarCount(), got)
	}
	if !strings.Contains(out, `id="`+sky.MeshConstellations+`"`) {
		t.Error("constellation group missing")
	}
	if !strings.Contains(out, ">Orion<") {
		t.Error("constellation label missing")
	}
	if strings.Count(out, "<line") == 0 {
		t.Error("no lines drawn")
	}
}

func TestRenderRejectsTinyWidth(t *testing.T) {
	if err := Render(&bytes.Buffer{}, &sky.Scene{}, 1); err == nil {
		t.Error("expected error for width 1")
	}
}
