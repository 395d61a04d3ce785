package sky

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Faultbox/skysaver/internal/geometry"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}

	if got := len(cat.Constellations); got != 9 {
		t.Errorf("expected 9 constellations, got %d", got)
	}
	if got := cat.StarCount(); got != 63 {
		t.Errorf("expected 63 stars, got %d", got)
	}

	lg := geometry.BuildLinkGraph(cat.Groups(), 1)
	if len(lg.Warnings) != 0 {
		t.Errorf("embedded catalog produced warnings: %+v", lg.Warnings)
	}
	if len(lg.Groups) != len(cat.Constellations) {
		t.Errorf("expected %d groups, got %d", len(cat.Constellations), len(lg.Groups))
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"syntax", "constellations: [", "parsing catalog"},
		{"no name", "constellations:\n  - stars: []\n", "without a name"},
		{"ra", "constellations:\n  - name: X\n    stars: [{name: a, ra: 24, dec: 0}]\n", "ra 24"},
		{"dec", "constellations:\n  - name: X\n    stars: [{name: a, ra: 1, dec: -91}]\n", "dec -91"},
		{"link arity", "constellations:\n  - name: X\n    stars: [{name: a, ra: 1, dec: 0}]\n    links: [[0, 0, 0]]\n", "3 indices"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseCatalogKeepsOutOfRangeLinks(t *testing.T) {
	cat, err := ParseCatalog([]byte(`
constellations:
  - name: Pair
    stars:
      - {name: a, ra: 1, dec: 10}
      - {name: b, ra: 2, dec: 20}
    links: [[0, 1], [5, 0]]
`))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	want := []geometry.PointGroup{{
		Name: "Pair",
		Stars: []geometry.Star{
			{RightAscension: 1, Declination: 10, ProperName: "a"},
			{RightAscension: 2, Declination: 20, ProperName: "b"},
		},
		Links: []geometry.Link{{A: 0, B: 1}, {A: 5, B: 0}},
	}}
	if diff := cmp.Diff(want, cat.Groups()); diff != "" {
		t.Errorf("Groups() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sky.yaml")
	data := "constellations:\n  - name: Crux\n    stars: [{name: Acrux, ra: 12.4433, dec: -63.0991}]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(cat.Constellations) != 1 || cat.Constellations[0].Name != "Crux" {
		t.Errorf("unexpected catalog %+v", cat)
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoadCatalogLegacyEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.yaml")
	data := "constellations:\n  - name: \"Caf\xe9\"\n    stars: [{name: \"\xc9toile\", ra: 1, dec: 2}]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if got := cat.Constellations[0].Name; got != "Café" {
		t.Errorf("expected name Café, got %q", got)
	}
	if got := cat.Constellations[0].Stars[0].Name; got != "Étoile" {
		t.Errorf("expected star Étoile, got %q", got)
	}
}
