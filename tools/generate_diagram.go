//go:build ignore
// +build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/ankek/terraform-provider-landingzone/internal/config"
	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
	"github.com/ankek/terraform-provider-landingzone/internal/generator"
	"github.com/ankek/terraform-provider-landingzone/internal/interfaces"
)

func main() {
	dir := flag.String("dir", ".", "Directory to write the catalog images to")
	dpi := flag.Float64("dpi", 150, "Resolution of the generated images")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Printf("Error creating %s: %v\n", *dir, err)
		os.Exit(1)
	}

	gen := generator.New(generator.WithLogger(hclog.New(&hclog.LoggerOptions{
		Name:  "generate",
		Level: hclog.Info,
	})))

	for _, name := range diagram.Names() {
		result, err := gen.Generate(context.Background(), interfaces.DiagramConfig{
			Cloud:      name,
			OutputPath: filepath.Join(*dir, config.DefaultOutputPath(name)),
			DPI:        *dpi,
		})
		if err != nil {
			fmt.Printf("Error rendering %s: %v\n", name, err)
			os.Exit(1)
		}

		fmt.Printf("%s: %d boxes, %d connectors -> %s (%d bytes)\n",
			name, result.BoxCount, result.ConnectorCount, result.OutputPath, result.FileSize)
	}
}
