package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Quality is the tessellation quality level picked by the user.
// What each level means in slices and stacks is decided by the scene builder.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
)

// Qualities lists every level from coarsest to finest.
var Qualities = []Quality{QualityLow, QualityMedium, QualityHigh}

// ParseQuality parses a level name, ignoring case and surrounding spaces.
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	if !q.Valid() {
		return "", fmt.Errorf("unknown quality %q (want low, medium or high)", s)
	}
	return q, nil
}

// Valid reports whether q is one of the known levels.
func (q Quality) Valid() bool {
	switch q {
	case QualityLow, QualityMedium, QualityHigh:
		return true
	}
	return false
}

func (q Quality) String() string {
	return string(q)
}

// UnmarshalYAML rejects unknown levels at load time.
func (q *Quality) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseQuality(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*q = parsed
	return nil
}
