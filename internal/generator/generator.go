// Package generator ties catalog lookup, path validation and rendering
// together. Both the CLI and the Terraform provider generate diagrams
// through it so they validate and report results the same way.
package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
	"github.com/ankek/terraform-provider-landingzone/internal/interfaces"
	"github.com/ankek/terraform-provider-landingzone/internal/renderer"
	"github.com/ankek/terraform-provider-landingzone/internal/validation"
	"github.com/hashicorp/go-hclog"
)

var _ interfaces.DiagramGenerator = (*Generator)(nil)

// Generator handles the core logic of generating diagrams
type Generator struct {
	renderer  interfaces.DiagramRenderer
	validator interfaces.PathValidator
	logger    hclog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithRenderer replaces the raster renderer
func WithRenderer(r interfaces.DiagramRenderer) Option {
	return func(g *Generator) { g.renderer = r }
}

// WithValidator replaces the path validator
func WithValidator(v interfaces.PathValidator) Option {
	return func(g *Generator) { g.validator = v }
}

// WithLogger sets the logger, which defaults to a null logger
func WithLogger(l hclog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New returns a Generator wired to the real renderer and validator
func New(opts ...Option) *Generator {
	g := &Generator{
		renderer:  renderer.Renderer{},
		validator: validation.Validator{},
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders a landing zone catalog to cfg.OutputPath.
//
// It performs the following steps:
//  1. Validates the output path
//  2. Looks up the catalog (gcp when cfg.Cloud is empty)
//  3. Renders the diagram to the requested format
//  4. Reports shape counts plus the size and digest of the written file
func (g *Generator) Generate(ctx context.Context, cfg interfaces.DiagramConfig) (*interfaces.GenerateResult, error) {
	if err := g.validator.ValidateOutputPath(cfg.OutputPath); err != nil {
		return nil, fmt.Errorf("invalid output path: %w", err)
	}

	cloud := cfg.Cloud
	if cloud == "" {
		cloud = diagram.DefaultCatalog
	}

	d, err := diagram.Lookup(cloud)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	log := g.logger.With("cloud", d.Name, "output_path", cfg.OutputPath)
	log.Debug("rendering diagram", "boxes", len(d.Boxes), "connectors", len(d.Connectors), "dpi", cfg.DPI)

	opts := renderer.RenderOptions{
		Format: cfg.Format,
		DPI:    cfg.DPI,
		Title:  cfg.Title,
	}
	if err := g.renderer.RenderDiagram(ctx, d, cfg.OutputPath, opts); err != nil {
		return nil, fmt.Errorf("failed to render diagram: %w", err)
	}

	size, digest, err := FileDigest(cfg.OutputPath)
	if err != nil {
		return nil, err
	}
	log.Info("diagram written", "bytes", size)

	return &interfaces.GenerateResult{
		Cloud:          d.Name,
		OutputPath:     cfg.OutputPath,
		BoxCount:       int64(len(d.Boxes)),
		ConnectorCount: int64(len(d.Connectors)),
		LegendEntries:  int64(len(d.Legend.Entries)),
		FileSize:       size,
		SHA256:         digest,
	}, nil
}

// FileDigest returns the size and hex SHA-256 of a file
func FileDigest(path string) (int64, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, "", fmt.Errorf("failed to read rendered diagram: %w", err)
	}
	sum := sha256.Sum256(data)
	return int64(len(data)), hex.EncodeToString(sum[:]), nil
}
