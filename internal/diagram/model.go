// Package diagram holds the static shape catalogs drawn by the renderer.
// A Diagram is plain data: boxes, connectors, a legend and a title placed
// at literal coordinates on a logical canvas whose y axis grows upward.
package diagram

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind categorizes a box by the landing-zone level it depicts
type Kind string

const (
	KindOrganization Kind = "organization"
	KindFolder       Kind = "folder"
	KindSubfolder    Kind = "subfolder"
	KindProject      Kind = "project"
	KindNetwork      Kind = "network"
	KindSubnet       Kind = "subnet"
	KindAnnotation   Kind = "annotation"
)

// Point is a position in logical canvas units
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Text is a block of text centered on its position. Content may span
// several lines separated by "\n".
type Text struct {
	Position Point   `yaml:"position"`
	Content  string  `yaml:"content"`
	Size     float64 `yaml:"size"` // points
	Bold     bool    `yaml:"bold,omitempty"`
	Color    string  `yaml:"color,omitempty"` // defaults to black
}

// Lines splits the content into display lines
func (t Text) Lines() []string {
	return strings.Split(t.Content, "\n")
}

// Box is a labeled rounded rectangle. X/Y is the lower-left corner of the
// inner rectangle; Pad expands the drawn outline on every side and is also
// the corner radius.
type Box struct {
	Kind      Kind    `yaml:"kind"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Pad       float64 `yaml:"pad"`
	Fill      string  `yaml:"fill"`
	Edge      string  `yaml:"edge"`
	LineWidth float64 `yaml:"line_width,omitempty"` // points, 1 when zero
	Alpha     float64 `yaml:"alpha,omitempty"`      // zero means opaque
	Label     Text    `yaml:"label"`
}

// Center returns the center of the inner rectangle
func (b Box) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Connector is a plain line without arrowheads. ShrinkA and ShrinkB
// shorten the line at the start and end, in points.
type Connector struct {
	From      Point   `yaml:"from"`
	To        Point   `yaml:"to"`
	ShrinkA   float64 `yaml:"shrink_a"`
	ShrinkB   float64 `yaml:"shrink_b"`
	Color     string  `yaml:"color"`
	Alpha     float64 `yaml:"alpha,omitempty"`
	LineWidth float64 `yaml:"line_width,omitempty"`
}

// LegendEntry maps a swatch color to a category label
type LegendEntry struct {
	Color string  `yaml:"color"`
	Alpha float64 `yaml:"alpha,omitempty"`
	Label string  `yaml:"label"`
}

// Legend is drawn once per diagram with its upper-right corner at Anchor,
// given as fractions of the canvas extent.
type Legend struct {
	Anchor   Point         `yaml:"anchor"`
	FontSize float64       `yaml:"font_size"`
	Entries  []LegendEntry `yaml:"entries"`
}

// Diagram is a complete static drawing on a Width x Height canvas
type Diagram struct {
	Name       string      `yaml:"name"`
	Width      float64     `yaml:"width"`
	Height     float64     `yaml:"height"`
	Title      Text        `yaml:"title"`
	Boxes      []Box       `yaml:"boxes"`
	Connectors []Connector `yaml:"connectors"`
	Legend     Legend      `yaml:"legend"`
}

// CountKind returns the number of boxes of the given kind
func (d *Diagram) CountKind(kind Kind) int {
	n := 0
	for _, b := range d.Boxes {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the structural properties the renderer relies on
func (d *Diagram) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("diagram %q: canvas extent must be positive, got %gx%g", d.Name, d.Width, d.Height)
	}

	for i, b := range d.Boxes {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("diagram %q: box %d (%q) has non-positive size", d.Name, i, b.Label.Content)
		}
		if err := checkAlpha(b.Alpha); err != nil {
			return fmt.Errorf("diagram %q: box %d: %w", d.Name, i, err)
		}
		for _, c := range []string{b.Fill, b.Edge, b.Label.Color} {
			if err := checkColor(c); err != nil {
				return fmt.Errorf("diagram %q: box %d: %w", d.Name, i, err)
			}
		}
	}

	for i, c := range d.Connectors {
		if err := checkAlpha(c.Alpha); err != nil {
			return fmt.Errorf("diagram %q: connector %d: %w", d.Name, i, err)
		}
		if err := checkColor(c.Color); err != nil {
			return fmt.Errorf("diagram %q: connector %d: %w", d.Name, i, err)
		}
	}

	for i, e := range d.Legend.Entries {
		if err := checkAlpha(e.Alpha); err != nil {
			return fmt.Errorf("diagram %q: legend entry %d: %w", d.Name, i, err)
		}
		if err := checkColor(e.Color); err != nil {
			return fmt.Errorf("diagram %q: legend entry %d: %w", d.Name, i, err)
		}
	}

	return nil
}

func checkAlpha(a float64) error {
	if a < 0 || a > 1 {
		return fmt.Errorf("alpha %g out of range [0, 1]", a)
	}
	return nil
}

// checkColor accepts an empty string, which means the default color
func checkColor(c string) error {
	if c == "" || hexColor.MatchString(c) {
		return nil
	}
	return fmt.Errorf("invalid color %q, want #rrggbb", c)
}
