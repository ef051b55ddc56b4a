package renderer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDPI keeps test canvases small
const testDPI = 72

func TestRenderDiagram(t *testing.T) {
	for _, name := range diagram.Names() {
		t.Run(name, func(t *testing.T) {
			d, err := diagram.Lookup(name)
			require.NoError(t, err)

			outputPath := filepath.Join(t.TempDir(), name+"-landing-zone-architecture.png")
			err = RenderDiagram(context.Background(), d, outputPath, RenderOptions{DPI: testDPI})
			require.NoError(t, err)

			content, err := os.ReadFile(outputPath)
			require.NoError(t, err)
			require.NotEmpty(t, content)

			img, err := png.Decode(bytes.NewReader(content))
			require.NoError(t, err)
			assert.Greater(t, img.Bounds().Dx(), 0)
			assert.LessOrEqual(t, img.Bounds().Dx(), 16*testDPI)
			assert.LessOrEqual(t, img.Bounds().Dy(), 12*testDPI)
		})
	}
}

func TestRenderDiagram_DefaultResolution(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "gcp.png")

	err := RenderDiagram(context.Background(), diagram.GCPLandingZone(), outputPath, RenderOptions{})
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(content))
	require.NoError(t, err)

	// 16x12 inches at 300 DPI, minus the blank margins removed by cropping
	assert.Greater(t, cfg.Width, 4000)
	assert.LessOrEqual(t, cfg.Width, 4800)
	assert.Greater(t, cfg.Height, 3000)
	assert.LessOrEqual(t, cfg.Height, 3600)

	// 300 DPI is 11811 pixels per meter
	assert.Contains(t, string(content[:64]), "pHYs")
	assert.Contains(t, string(content[:64]), string([]byte{0, 0, 0x2e, 0x23, 0, 0, 0x2e, 0x23, 1}))
}

func TestRenderDiagram_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "first.png")
	second := filepath.Join(tmpDir, "second.png")
	opts := RenderOptions{DPI: 100}

	require.NoError(t, RenderDiagram(context.Background(), diagram.GCPLandingZone(), first, opts))
	require.NoError(t, RenderDiagram(context.Background(), diagram.GCPLandingZone(), second, opts))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "renders of the same diagram differ")
}

func TestRenderDiagram_OverwritesSamePath(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "diagram.png")
	opts := RenderOptions{DPI: testDPI}

	require.NoError(t, os.WriteFile(outputPath, []byte("stale"), 0644))

	require.NoError(t, RenderDiagram(context.Background(), diagram.GCPLandingZone(), outputPath, opts))
	first, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	require.NoError(t, RenderDiagram(context.Background(), diagram.GCPLandingZone(), outputPath, opts))
	second, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	assert.NotEqual(t, []byte("stale"), first)
	assert.Equal(t, first, second)

	// no temp files left next to the output
	entries, err := os.ReadDir(filepath.Dir(outputPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRenderDiagram_MissingDirectory(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "missing", "out.png")

	err := RenderDiagram(context.Background(), diagram.GCPLandingZone(), outputPath, RenderOptions{DPI: testDPI})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderDiagram_InvalidDPI(t *testing.T) {
	tests := []struct {
		name string
		dpi  float64
	}{
		{name: "NaN", dpi: math.NaN()},
		{name: "infinite", dpi: math.Inf(1)},
		{name: "too large", dpi: 1e9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := filepath.Join(t.TempDir(), "diagram.png")

			err := RenderDiagram(context.Background(), diagram.GCPLandingZone(), outputPath, RenderOptions{DPI: tt.dpi})
			assert.ErrorIs(t, err, ErrInvalidCanvas)

			_, statErr := os.Stat(outputPath)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestRenderDiagram_ContextCancellation(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "diagram.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RenderDiagram(ctx, diagram.GCPLandingZone(), outputPath, RenderOptions{DPI: testDPI})
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRenderDiagram_UnsupportedFormat(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format string
	}{
		{name: "svg extension", path: "diagram.svg"},
		{name: "pdf format", path: "diagram.png", format: "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := filepath.Join(t.TempDir(), tt.path)

			err := RenderDiagram(context.Background(), diagram.GCPLandingZone(), outputPath, RenderOptions{Format: tt.format, DPI: testDPI})
			assert.ErrorIs(t, err, ErrUnsupportedFormat)

			_, statErr := os.Stat(outputPath)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestRenderDiagram_JPEG(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "diagram.jpg")

	require.NoError(t, RenderDiagram(context.Background(), diagram.AzureLandingZone(), outputPath, RenderOptions{DPI: testDPI}))

	f, err := os.Open(outputPath)
	require.NoError(t, err)
	defer f.Close()

	_, err = jpeg.DecodeConfig(f)
	assert.NoError(t, err)
}

func TestRenderDiagram_TitleOverride(t *testing.T) {
	tmpDir := t.TempDir()
	plain := filepath.Join(tmpDir, "plain.png")
	titled := filepath.Join(tmpDir, "titled.png")

	require.NoError(t, RenderDiagram(context.Background(), diagram.GCPLandingZone(), plain, RenderOptions{DPI: testDPI}))
	require.NoError(t, RenderDiagram(context.Background(), diagram.GCPLandingZone(), titled, RenderOptions{DPI: testDPI, Title: "Acme Corp Landing Zone"}))

	a, err := os.ReadFile(plain)
	require.NoError(t, err)
	b, err := os.ReadFile(titled)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRenderer(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "diagram.png")

	var r Renderer
	require.NoError(t, r.RenderDiagram(context.Background(), diagram.AWSLandingZone(), outputPath, RenderOptions{DPI: testDPI}))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPNGRenderer_Pixels(t *testing.T) {
	img, err := NewPNGRenderer(RenderOptions{DPI: testDPI}).Render(diagram.GCPLandingZone())
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 16*testDPI, 12*testDPI), img.Bounds())

	// top-left corner stays white
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, pixel(img, 2, 2))

	// organization box at 0.8 opacity over white: #4285f4 blends to ~(104, 157, 246)
	// y=9.8 flips to row (12-9.8)*72
	c := pixel(img, 3*testDPI, 158)
	assert.InDelta(t, 104, int(c[0]), 3)
	assert.InDelta(t, 157, int(c[1]), 3)
	assert.InDelta(t, 246, int(c[2]), 3)

	// landing zone folder is opaque #e8f0fe
	c = pixel(img, 3*testDPI, 273)
	assert.InDelta(t, 0xe8, int(c[0]), 2)
	assert.InDelta(t, 0xf0, int(c[1]), 2)
	assert.InDelta(t, 0xfe, int(c[2]), 2)
}

func TestPNGRenderer_EmptyCanvas(t *testing.T) {
	d := diagram.GCPLandingZone()
	d.Width = 0

	_, err := NewPNGRenderer(RenderOptions{DPI: testDPI}).Render(d)
	assert.ErrorIs(t, err, ErrInvalidCanvas)
}

func pixel(img *image.RGBA, x, y int) [4]uint8 {
	i := img.PixOffset(x, y)
	return [4]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}
