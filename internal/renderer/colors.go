package renderer

import (
	"image/color"
	"strconv"
	"strings"
)

// parseColor parses a #rrggbb color and applies the given opacity.
// An alpha of zero means fully opaque; malformed input yields black.
func parseColor(hexColor string, alpha float64) color.NRGBA {
	hexColor = strings.TrimPrefix(hexColor, "#")

	var r, g, b uint8
	if len(hexColor) == 6 {
		if v, err := strconv.ParseUint(hexColor, 16, 32); err == nil {
			r = uint8(v >> 16)
			g = uint8(v >> 8)
			b = uint8(v)
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)}
}

func alphaByte(alpha float64) uint8 {
	if alpha <= 0 || alpha >= 1 {
		return 255
	}
	return uint8(alpha*255 + 0.5)
}

// textColor resolves a label color, black when unset
func textColor(hexColor string) color.NRGBA {
	if hexColor == "" {
		return color.NRGBA{A: 255}
	}
	return parseColor(hexColor, 1)
}
