package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
	"github.com/fogleman/gg"
)

// PNGRenderer rasterizes a diagram onto an in-memory canvas. One logical
// unit maps to one inch, so the pixel scale equals the DPI.
type PNGRenderer struct {
	dc      *gg.Context
	fonts   *fontBook
	scale   float64
	height  float64
	options RenderOptions
}

// NewPNGRenderer creates a new PNG renderer
func NewPNGRenderer(opts RenderOptions) *PNGRenderer {
	return &PNGRenderer{
		options: opts,
	}
}

// Render draws the diagram and returns the full, uncropped canvas
func (r *PNGRenderer) Render(d *diagram.Diagram) (*image.RGBA, error) {
	dpi := r.options.dpi()
	w, h := math.Ceil(d.Width*dpi), math.Ceil(d.Height*dpi)
	// NaN fails both comparisons
	if !(w >= 1 && w <= maxCanvasSide && h >= 1 && h <= maxCanvasSide) {
		return nil, fmt.Errorf("%w: %vx%v pixels at %v dpi", ErrInvalidCanvas, w, h, dpi)
	}

	fonts, err := newFontBook(dpi)
	if err != nil {
		return nil, err
	}

	r.fonts = fonts
	r.scale = dpi
	r.height = d.Height
	r.dc = gg.NewContext(int(w), int(h))

	// White background
	r.dc.SetColor(color.White)
	r.dc.Clear()

	title := d.Title
	if r.options.Title != "" {
		title.Content = r.options.Title
	}
	r.drawText(title)

	for _, box := range d.Boxes {
		r.renderBox(box)
	}

	for _, conn := range d.Connectors {
		r.renderConnector(conn)
	}

	r.drawLegend(d)

	return r.image(), nil
}

func (r *PNGRenderer) image() *image.RGBA {
	if rgba, ok := r.dc.Image().(*image.RGBA); ok {
		return rgba
	}
	src := r.dc.Image()
	dst := image.NewRGBA(src.Bounds())
	for y := src.Bounds().Min.Y; y < src.Bounds().Max.Y; y++ {
		for x := src.Bounds().Min.X; x < src.Bounds().Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
	return dst
}

// px converts a logical x coordinate to pixels
func (r *PNGRenderer) px(x float64) float64 {
	return x * r.scale
}

// py converts a logical y coordinate to pixels, flipping the axis
func (r *PNGRenderer) py(y float64) float64 {
	return (r.height - y) * r.scale
}

// points converts a length in points to pixels
func (r *PNGRenderer) points(pt float64) float64 {
	return pt * r.scale / 72
}

// renderBox draws a rounded rectangle expanded by its pad, then its label
func (r *PNGRenderer) renderBox(box diagram.Box) {
	x := r.px(box.X - box.Pad)
	y := r.py(box.Y + box.Height + box.Pad)
	w := (box.Width + 2*box.Pad) * r.scale
	h := (box.Height + 2*box.Pad) * r.scale

	r.dc.DrawRoundedRectangle(x, y, w, h, box.Pad*r.scale)
	if box.Fill != "" {
		r.dc.SetColor(parseColor(box.Fill, box.Alpha))
		r.dc.FillPreserve()
	}
	if box.Edge != "" {
		r.dc.SetColor(parseColor(box.Edge, box.Alpha))
		r.dc.SetLineWidth(r.points(lineWidth(box.LineWidth)))
		r.dc.StrokePreserve()
	}
	r.dc.ClearPath()

	r.drawText(box.Label)
}

// renderConnector draws a plain line shortened at both ends
func (r *PNGRenderer) renderConnector(conn diagram.Connector) {
	x1, y1 := r.px(conn.From.X), r.py(conn.From.Y)
	x2, y2 := r.px(conn.To.X), r.py(conn.To.Y)

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	shrinkA, shrinkB := r.points(conn.ShrinkA), r.points(conn.ShrinkB)
	if length <= shrinkA+shrinkB {
		return
	}

	ux, uy := dx/length, dy/length
	x1, y1 = x1+ux*shrinkA, y1+uy*shrinkA
	x2, y2 = x2-ux*shrinkB, y2-uy*shrinkB

	r.dc.SetColor(parseColor(conn.Color, conn.Alpha))
	r.dc.SetLineWidth(r.points(lineWidth(conn.LineWidth)))
	r.dc.SetLineCapButt()
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

// drawText draws each line of the text horizontally centered, with the
// whole block vertically centered on the text position
func (r *PNGRenderer) drawText(text diagram.Text) {
	if text.Content == "" {
		return
	}

	r.dc.SetFontFace(r.fonts.face(text.Bold, text.Size))
	r.dc.SetColor(textColor(text.Color))

	lines := text.Lines()
	lineHeight := r.points(text.Size * 1.2)
	cx := r.px(text.Position.X)
	cy := r.py(text.Position.Y) - float64(len(lines)-1)*lineHeight/2

	for i, line := range lines {
		r.dc.DrawStringAnchored(line, cx, cy+float64(i)*lineHeight, 0.5, 0.5)
	}
}

// lineWidth returns the width in points, 1 when unset
func lineWidth(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
