package render

import (
	"math"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
)

// Palette is an ordered glyph list, darkest first.
type Palette []rune

// BlockPalette is the shading palette used by ModeBlock.
var BlockPalette = Palette{'█', '▓', '▒', '░', ' '}

// Luma returns the perceptual brightness of p using NTSC weights, in [0, 255].
func Luma(p imaging.Pixel) float64 {
	return 0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)
}

// QuantizeIndex maps a luma value to a palette index in [0, n-1].
//
// The luma range is cut into n+1 sections of width 255/(n+1); the index is
// the section number minus one, clamped at both ends. For n < 1 it returns 0.
func QuantizeIndex(luma float64, n int) int {
	if n < 1 {
		return 0
	}
	divisor := 255.0 / float64(n+1)
	index := int(math.Floor(luma/divisor)) - 1
	if index < 0 {
		return 0
	}
	if index > n-1 {
		return n - 1
	}
	return index
}

// Glyph returns the glyph for p. With swap set the palette is read
// lightest first, for sinks whose dark/light convention is inverted.
func (pal Palette) Glyph(p imaging.Pixel, swap bool) rune {
	i := QuantizeIndex(Luma(p), len(pal))
	if swap {
		i = len(pal) - 1 - i
	}
	return pal[i]
}
