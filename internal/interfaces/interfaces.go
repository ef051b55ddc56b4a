// Package interfaces defines interfaces for dependency injection and testing
package interfaces

import (
	"context"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
	"github.com/ankek/terraform-provider-landingzone/internal/renderer"
)

// DiagramRenderer defines the interface for rendering diagrams
type DiagramRenderer interface {
	// RenderDiagram draws a diagram and saves it to the output path
	RenderDiagram(ctx context.Context, d *diagram.Diagram, outputPath string, opts renderer.RenderOptions) error
}

// PathValidator defines the interface for validating file paths
type PathValidator interface {
	// ValidateOutputPath validates an output path for security and accessibility
	ValidateOutputPath(path string) error

	// ValidateInputPath validates an input path such as a config file
	ValidateInputPath(path string, mustBeDir bool) error
}

// DiagramGenerator defines the interface for generating diagrams
type DiagramGenerator interface {
	// Generate renders a compiled-in landing zone catalog to a file
	Generate(ctx context.Context, cfg DiagramConfig) (*GenerateResult, error)
}

// DiagramConfig contains all configuration needed to generate a diagram
type DiagramConfig struct {
	Cloud      string
	OutputPath string
	Format     string
	DPI        float64
	Title      string
}

// GenerateResult contains the results of diagram generation
type GenerateResult struct {
	Cloud          string
	OutputPath     string
	BoxCount       int64
	ConnectorCount int64
	LegendEntries  int64
	FileSize       int64
	SHA256         string
}
