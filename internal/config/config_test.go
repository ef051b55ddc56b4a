package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
	"github.com/ankek/terraform-provider-landingzone/internal/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name: "all attributes",
			content: `
cloud       = "aws"
output_path = "out/aws.png"
dpi         = 150
title       = "Acme"
`,
			want: Config{Cloud: "aws", OutputPath: "out/aws.png", DPI: 150, Title: "Acme"},
		},
		{
			name:    "partial",
			content: `cloud = "azure"`,
			want:    Config{Cloud: "azure"},
		},
		{
			name:    "empty file",
			content: "",
			want:    Config{},
		},
		{
			name:    "syntax error",
			content: `cloud = `,
			wantErr: true,
		},
		{
			name:    "unknown attribute",
			content: `colour = "blue"`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			content: `dpi = "high"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "landingzone.hcl", tt.content)

			cfg, err := Load(path, "")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoad_NoPath(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoad_EnvFileWithoutConfig(t *testing.T) {
	envFile := writeFile(t, t.TempDir(), ".env", "LZ_CLOUD=aws\n")

	_, err := Load("", envFile)
	assert.ErrorIs(t, err, ErrEnvFileWithoutConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"), "")
	assert.Error(t, err)
}

func TestLoad_EnvInterpolation(t *testing.T) {
	t.Setenv("LZ_DIAGRAM_DIR", "/srv/diagrams")
	dir := t.TempDir()
	path := writeFile(t, dir, "landingzone.hcl", `output_path = "${env.LZ_DIAGRAM_DIR}/gcp.png"`)

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "/srv/diagrams/gcp.png", cfg.OutputPath)
}

func TestLoad_EnvFileOverridesEnvironment(t *testing.T) {
	t.Setenv("LZ_CLOUD", "aws")
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "LZ_CLOUD=azure\nLZ_TITLE=\"Platform Team\"\n")
	path := writeFile(t, dir, "landingzone.hcl", `
cloud = env.LZ_CLOUD
title = env.LZ_TITLE
`)

	cfg, err := Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, "azure", cfg.Cloud)
	assert.Equal(t, "Platform Team", cfg.Title)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "landingzone.hcl", `cloud = "gcp"`)

	_, err := Load(path, filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}

func TestLoad_UndefinedEnvVariable(t *testing.T) {
	path := writeFile(t, t.TempDir(), "landingzone.hcl", `title = env.LZ_SURELY_NOT_SET_ANYWHERE`)

	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "empty",
			in:   Config{},
			want: Config{Cloud: "gcp", DPI: 300, OutputPath: "gcp-landing-zone-architecture.png"},
		},
		{
			name: "output follows cloud",
			in:   Config{Cloud: " AWS "},
			want: Config{Cloud: "aws", DPI: 300, OutputPath: "aws-landing-zone-architecture.png"},
		},
		{
			name: "explicit values kept",
			in:   Config{Cloud: "azure", DPI: 96, OutputPath: "x.png", Title: "T"},
			want: Config{Cloud: "azure", DPI: 96, OutputPath: "x.png", Title: "T"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.ApplyDefaults()
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "valid", cfg: Config{Cloud: "gcp", DPI: 300}},
		{name: "lower bound", cfg: Config{Cloud: "aws", DPI: 36}},
		{name: "upper bound", cfg: Config{Cloud: "azure", DPI: 1200}},
		{name: "unknown cloud", cfg: Config{Cloud: "oracle", DPI: 300}, wantErr: diagram.ErrUnknownCatalog},
		{name: "dpi too low", cfg: Config{Cloud: "gcp", DPI: 10}, wantErr: ErrDPIOutOfRange},
		{name: "dpi too high", cfg: Config{Cloud: "gcp", DPI: 2400}, wantErr: ErrDPIOutOfRange},
		{name: "dpi NaN", cfg: Config{Cloud: "gcp", DPI: math.NaN()}, wantErr: ErrDPIOutOfRange},
		{name: "dpi infinite", cfg: Config{Cloud: "gcp", DPI: math.Inf(1)}, wantErr: ErrDPIOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDiagramConfig(t *testing.T) {
	cfg := Config{Cloud: "gcp", OutputPath: "gcp.png", DPI: 300, Title: "T"}

	assert.Equal(t, interfaces.DiagramConfig{
		Cloud:      "gcp",
		OutputPath: "gcp.png",
		DPI:        300,
		Title:      "T",
	}, cfg.DiagramConfig())
}
