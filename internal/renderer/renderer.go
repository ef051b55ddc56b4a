// Package renderer draws static landing-zone diagrams onto a raster canvas
// and exports them as PNG or JPEG. Boxes, connectors, the title and the
// legend are composited in catalog order; the result is cropped to its
// content and written atomically.
package renderer

import (
	"context"
	"errors"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
)

// DefaultDPI is the export resolution when none is configured
const DefaultDPI = 300.0

// maxCanvasSide bounds either canvas dimension in pixels
const maxCanvasSide = 1 << 16

// ErrInvalidCanvas is returned when the diagram size and DPI do not give a
// drawable canvas
var ErrInvalidCanvas = errors.New("invalid canvas size")

// RenderOptions contains configuration for rendering
type RenderOptions struct {
	Format string  // "png", "jpeg", or empty to infer from the output path
	DPI    float64 // pixels per logical unit, DefaultDPI when zero
	Title  string  // overrides the catalog title when set
}

func (o RenderOptions) dpi() float64 {
	if o.DPI <= 0 {
		return DefaultDPI
	}
	return o.DPI
}

// RenderDiagram draws the diagram and saves it to outputPath.
// It respects the provided context for cancellation.
func RenderDiagram(ctx context.Context, d *diagram.Diagram, outputPath string, opts RenderOptions) error {
	return ExportDiagram(ctx, d, outputPath, opts)
}

// Renderer adapts the package functions to the interfaces.DiagramRenderer
// contract
type Renderer struct{}

// RenderDiagram implements interfaces.DiagramRenderer
func (Renderer) RenderDiagram(ctx context.Context, d *diagram.Diagram, outputPath string, opts RenderOptions) error {
	return RenderDiagram(ctx, d, outputPath, opts)
}
