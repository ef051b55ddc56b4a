package renderer

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
}

// loadFonts parses the embedded Go fonts once; parsed fonts are read-only
// and shared between renders
var loadFonts = sync.OnceValues(func() (*fontSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &fontSet{regular: regular, bold: bold}, nil
})

type faceKey struct {
	bold bool
	size float64
}

// fontBook hands out faces sized in points for one render. Faces keep
// glyph caches and are not safe for concurrent use.
type fontBook struct {
	fonts *fontSet
	dpi   float64
	faces map[faceKey]font.Face
}

func newFontBook(dpi float64) (*fontBook, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &fontBook{
		fonts: fonts,
		dpi:   dpi,
		faces: make(map[faceKey]font.Face),
	}, nil
}

func (b *fontBook) face(bold bool, size float64) font.Face {
	key := faceKey{bold: bold, size: size}
	if f, ok := b.faces[key]; ok {
		return f
	}

	ttf := b.fonts.regular
	if bold {
		ttf = b.fonts.bold
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     b.dpi,
		Hinting: font.HintingNone,
	})
	b.faces[key] = f
	return f
}
