package renderer

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
)

// ErrUnsupportedFormat is returned for formats other than PNG and JPEG
var ErrUnsupportedFormat = errors.New("unsupported format")

// cropPad is the margin kept around the content, in inches
const cropPad = 0.1

// ExportDiagram draws, crops, encodes and writes a diagram with context
// support. Nothing is left at outputPath when any step fails.
func ExportDiagram(ctx context.Context, d *diagram.Diagram, outputPath string, opts RenderOptions) error {
	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	format, err := ResolveFormat(opts.Format, outputPath)
	if err != nil {
		return err
	}

	img, err := NewPNGRenderer(opts).Render(d)
	if err != nil {
		return fmt.Errorf("failed to draw diagram: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	cropped := Crop(img, int(math.Round(cropPad*opts.dpi())))

	buf := &bytes.Buffer{}
	if err := Encode(buf, cropped, format, opts.dpi()); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeFileAtomic(outputPath, buf.Bytes())
}

// ResolveFormat normalizes an explicit format, or infers one from the
// output path extension when format is empty
func ResolveFormat(format, outputPath string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
		if f == "" {
			f = "png"
		}
	}

	switch f {
	case "png":
		return "png", nil
	case "jpg", "jpeg":
		return "jpeg", nil
	default:
		return "", fmt.Errorf("%w: %s (only png and jpeg are supported)", ErrUnsupportedFormat, f)
	}
}

// Crop returns the bounding box of all non-white pixels grown by pad and
// clipped to the image. A blank image is returned whole.
func Crop(img *image.RGBA, pad int) image.Image {
	content := contentBounds(img)
	if content.Empty() {
		return img
	}
	return img.SubImage(content.Inset(-pad).Intersect(img.Bounds()))
}

func contentBounds(img *image.RGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y) : img.PixOffset(b.Max.X-1, y)+4]
		for i := 0; i < len(row); i += 4 {
			if row[i] == 0xff && row[i+1] == 0xff && row[i+2] == 0xff {
				continue
			}
			x := b.Min.X + i/4
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Encode writes img in the given format. PNG output carries a pHYs chunk
// recording the resolution.
func Encode(w io.Writer, img image.Image, format string, dpi float64) error {
	switch format {
	case "png":
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, img); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
		_, err := w.Write(withPhysicalDims(buf.Bytes(), dpi))
		return err
	case "jpeg":
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: 95}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// pngHeaderLen covers the signature and the IHDR chunk, which the encoder
// always writes first
const pngHeaderLen = 8 + 4 + 4 + 13 + 4

// withPhysicalDims inserts a pHYs chunk after IHDR
func withPhysicalDims(data []byte, dpi float64) []byte {
	if len(data) < pngHeaderLen || dpi <= 0 {
		return data
	}

	ppm := uint32(math.Round(dpi / 0.0254))
	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: meter
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:pngHeaderLen]...)
	out = append(out, chunk...)
	out = append(out, data[pngHeaderLen:]...)
	return out
}
