package diagram

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCatalog is returned by Lookup for names with no diagram
var ErrUnknownCatalog = errors.New("unknown catalog")

const (
	black = "#000000"
	white = "#ffffff"

	// connectorColor is the gray used for every containment line
	connectorColor = "#808080"
)

// DefaultCatalog is rendered when no catalog is named
const DefaultCatalog = "gcp"

var catalogs = map[string]func() *Diagram{
	"gcp":   GCPLandingZone,
	"aws":   AWSLandingZone,
	"azure": AzureLandingZone,
}

// Names returns the registered catalog names in sorted order
func Names() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds a fresh copy of the named catalog. Names are matched
// case-insensitively.
func Lookup(name string) (*Diagram, error) {
	build, ok := catalogs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownCatalog, name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// newCanvas returns an empty 16x12 diagram with the shared title style
// and legend placement
func newCanvas(name, title string) *Diagram {
	return &Diagram{
		Name:   name,
		Width:  16,
		Height: 12,
		Title: Text{
			Position: Point{X: 8, Y: 11.5},
			Content:  title,
			Size:     20,
			Bold:     true,
		},
		Legend: Legend{
			Anchor:   Point{X: 0.98, Y: 0.95},
			FontSize: 10,
		},
	}
}

func label(x, y float64, content string, size float64, color string) Text {
	return Text{
		Position: Point{X: x, Y: y},
		Content:  content,
		Size:     size,
		Bold:     true,
		Color:    color,
	}
}

type segment struct{ from, to Point }

func seg(x1, y1, x2, y2 float64) segment {
	return segment{from: Point{X: x1, Y: y1}, to: Point{X: x2, Y: y2}}
}

// lines turns segments into connectors sharing one style
func lines(segs ...segment) []Connector {
	out := make([]Connector, 0, len(segs))
	for _, s := range segs {
		out = append(out, Connector{
			From:    s.from,
			To:      s.to,
			ShrinkA: 5,
			ShrinkB: 5,
			Color:   connectorColor,
			Alpha:   0.6,
		})
	}
	return out
}
