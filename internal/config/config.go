// Package config loads diagram settings from an optional HCL file.
//
// A config file looks like:
//
//	cloud       = "gcp"
//	output_path = "${env.HOME}/diagrams/gcp-landing-zone-architecture.png"
//	dpi         = 300
//	title       = "Acme Landing Zone"
//
// The env object holds the process environment, overlaid with the
// variables of an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
	"github.com/ankek/terraform-provider-landingzone/internal/interfaces"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"github.com/zclconf/go-cty/cty"
)

const (
	DefaultDPI = 300.0
	MinDPI     = 36.0
	MaxDPI     = 1200.0
)

var (
	// ErrDPIOutOfRange is returned by Validate for a dpi outside [MinDPI, MaxDPI]
	ErrDPIOutOfRange = errors.New("dpi out of range")
	// ErrEnvFileWithoutConfig is returned by Load when an env file is given
	// without a config file to read it into
	ErrEnvFileWithoutConfig = errors.New("env file requires a config file")
)

// Config holds the settings of a single render
type Config struct {
	OutputPath string  `hcl:"output_path,optional"`
	Cloud      string  `hcl:"cloud,optional"`
	DPI        float64 `hcl:"dpi,optional"`
	Title      string  `hcl:"title,optional"`
}

// DefaultOutputPath is the file name used when no output path is set
func DefaultOutputPath(cloud string) string {
	return fmt.Sprintf("%s-landing-zone-architecture.png", cloud)
}

// Load decodes the config file at path. An empty path yields an empty
// Config. envFile, when set, is read into the env object and needs a path.
func Load(path, envFile string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		if envFile != "" {
			return nil, fmt.Errorf("%w: %s", ErrEnvFileWithoutConfig, envFile)
		}
		return cfg, nil
	}

	env, err := environment(envFile)
	if err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", path, diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": env,
		},
	}
	if diags := gohcl.DecodeBody(file.Body, evalCtx, cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", path, diags.Error())
	}

	return cfg, nil
}

// environment builds the env object from os.Environ and the .env file
func environment(envFile string) (cty.Value, error) {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	if envFile != "" {
		dotenv, err := godotenv.Read(envFile)
		if err != nil {
			return cty.NilVal, fmt.Errorf("failed to read env file: %w", err)
		}
		for name, value := range dotenv {
			vars[name] = cty.StringVal(value)
		}
	}

	return cty.ObjectVal(vars), nil
}

// ApplyDefaults fills unset fields. The output path default depends on
// the cloud, so flags must be merged before this is called.
func (c *Config) ApplyDefaults() {
	c.Cloud = strings.ToLower(strings.TrimSpace(c.Cloud))
	if c.Cloud == "" {
		c.Cloud = diagram.DefaultCatalog
	}
	if c.DPI == 0 {
		c.DPI = DefaultDPI
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath(c.Cloud)
	}
}

// Validate checks the cloud name and dpi range
func (c *Config) Validate() error {
	if _, err := diagram.Lookup(c.Cloud); err != nil {
		return err
	}
	// negated so that NaN is rejected too
	if !(c.DPI >= MinDPI && c.DPI <= MaxDPI) {
		return fmt.Errorf("%w: %v (must be between %v and %v)", ErrDPIOutOfRange, c.DPI, MinDPI, MaxDPI)
	}
	return nil
}

// DiagramConfig converts the settings into generator input
func (c *Config) DiagramConfig() interfaces.DiagramConfig {
	return interfaces.DiagramConfig{
		Cloud:      c.Cloud,
		OutputPath: c.OutputPath,
		DPI:        c.DPI,
		Title:      c.Title,
	}
}
