package renderer

import (
	"image/color"

	"github.com/ankek/terraform-provider-landingzone/internal/diagram"
)

// Legend spacing, in multiples of the legend font size
const (
	legendBorderPad     = 0.4
	legendBorderAxesPad = 0.5
	legendHandleLength  = 2.0
	legendHandleHeight  = 0.7
	legendTextPad       = 0.8
	legendLabelSpacing  = 0.5
	legendCornerRadius  = 0.2
)

var (
	legendFrameFill = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
	legendFrameEdge = color.NRGBA{R: 204, G: 204, B: 204, A: 255}
)

// drawLegend draws a framed color key with its upper-right corner at the
// legend anchor
func (r *PNGRenderer) drawLegend(d *diagram.Diagram) {
	entries := d.Legend.Entries
	if len(entries) == 0 {
		return
	}

	size := d.Legend.FontSize
	if size <= 0 {
		size = 10
	}
	em := r.points(size)

	r.dc.SetFontFace(r.fonts.face(false, size))
	rowHeight := r.dc.FontHeight()

	var labelWidth float64
	for _, e := range entries {
		if w, _ := r.dc.MeasureString(e.Label); w > labelWidth {
			labelWidth = w
		}
	}

	pad := legendBorderPad * em
	handleLength := legendHandleLength * em
	handleHeight := legendHandleHeight * em
	textPad := legendTextPad * em
	spacing := legendLabelSpacing * em

	n := float64(len(entries))
	width := 2*pad + handleLength + textPad + labelWidth
	height := 2*pad + n*rowHeight + (n-1)*spacing

	right := r.px(d.Legend.Anchor.X*d.Width) - legendBorderAxesPad*em
	top := r.py(d.Legend.Anchor.Y*d.Height) + legendBorderAxesPad*em
	left := right - width

	r.dc.DrawRoundedRectangle(left, top, width, height, legendCornerRadius*em)
	r.dc.SetColor(legendFrameFill)
	r.dc.FillPreserve()
	r.dc.SetColor(legendFrameEdge)
	r.dc.SetLineWidth(r.points(1))
	r.dc.Stroke()

	for i, e := range entries {
		cy := top + pad + rowHeight/2 + float64(i)*(rowHeight+spacing)

		r.dc.DrawRectangle(left+pad, cy-handleHeight/2, handleLength, handleHeight)
		r.dc.SetColor(parseColor(e.Color, e.Alpha))
		r.dc.Fill()

		r.dc.SetColor(color.Black)
		r.dc.DrawStringAnchored(e.Label, left+pad+handleLength+textPad, cy, 0, 0.5)
	}
}
