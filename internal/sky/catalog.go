package sky

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/skysaver/internal/geometry"
	"github.com/Faultbox/skysaver/pkg/encoding"
)

//go:embed data/constellations.yaml
var defaultCatalogData []byte

// Catalog is a list of constellations read from YAML.
type Catalog struct {
	Constellations []Constellation `yaml:"constellations"`
}

// Constellation is one named star figure.
type Constellation struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Stars       []CatalogStar `yaml:"stars"`
	// Links are index pairs into Stars. Pairs that point outside Stars are
	// kept here and reported when the link graph is built.
	Links [][]int `yaml:"links"`
}

// CatalogStar is one star entry. RA is in hours, Dec in degrees.
type CatalogStar struct {
	Name  string  `yaml:"name"`
	RA    float64 `yaml:"ra"`
	Dec   float64 `yaml:"dec"`
	Mag   float64 `yaml:"mag"`
	Class string  `yaml:"class"`
}

// DefaultCatalog returns the embedded catalogue.
func DefaultCatalog() (*Catalog, error) {
	cat, err := ParseCatalog(defaultCatalogData)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return cat, nil
}

// LoadCatalog reads a catalogue file. UTF-16 and Windows-1252 files are
// converted to UTF-8 first.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	data, err := encoding.ToUTF8(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: decoding: %w", path, err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes and checks a catalogue. Star coordinates out of range
// and links that are not pairs are errors; link indices are not checked.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	for _, c := range cat.Constellations {
		if c.Name == "" {
			return nil, errors.New("constellation without a name")
		}
		for i, s := range c.Stars {
			if s.RA < 0 || s.RA >= 24 {
				return nil, fmt.Errorf("%s: star %d (%s): ra %v outside [0, 24)", c.Name, i, s.Name, s.RA)
			}
			if s.Dec < -90 || s.Dec > 90 {
				return nil, fmt.Errorf("%s: star %d (%s): dec %v outside [-90, 90]", c.Name, i, s.Name, s.Dec)
			}
		}
		for i, l := range c.Links {
			if len(l) != 2 {
				return nil, fmt.Errorf("%s: link %d has %d indices, want 2", c.Name, i, len(l))
			}
		}
	}
	return &cat, nil
}

// StarCount returns the number of stars over all constellations.
func (c *Catalog) StarCount() int {
	n := 0
	for _, con := range c.Constellations {
		n += len(con.Stars)
	}
	return n
}

// Groups converts the catalogue into link-graph input.
func (c *Catalog) Groups() []geometry.PointGroup {
	groups := make([]geometry.PointGroup, 0, len(c.Constellations))
	for _, con := range c.Constellations {
		g := geometry.PointGroup{
			Name:        con.Name,
			Description: con.Description,
			Stars:       make([]geometry.Star, len(con.Stars)),
			Links:       make([]geometry.Link, len(con.Links)),
		}
		for i, s := range con.Stars {
			g.Stars[i] = geometry.Star{
				RightAscension: s.RA,
				Declination:    s.Dec,
				Magnitude:      s.Mag,
				SpectralClass:  s.Class,
				ProperName:     s.Name,
			}
		}
		for i, l := range con.Links {
			g.Links[i] = geometry.Link{A: l[0], B: l[1]}
		}
		groups = append(groups, g)
	}
	return groups
}
