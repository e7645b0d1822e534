package render

import (
	"image"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
)

// SolidGlyph is the glyph emitted by the colored modes.
const SolidGlyph = '█'

// colorStrategy passes each sampled pixel's color through unquantized.
// ModeColorHTML uses it with compression 1 so every source pixel is emitted.
type colorStrategy struct {
	mode   Mode
	spec   SampleSpec
	repeat int
}

func (c *colorStrategy) Mode() Mode       { return c.mode }
func (c *colorStrategy) Spec() SampleSpec { return c.spec }
func (c *colorStrategy) Colored() bool    { return true }
func (c *colorStrategy) Repeat() int      { return c.repeat }

func (c *colorStrategy) Encode(img *imaging.Raster, at image.Point, dst []Cell) []Cell {
	p := img.At(at.X, at.Y)
	for i := 0; i < c.repeat; i++ {
		dst = append(dst, Cell{Glyph: SolidGlyph, Color: p, Colored: true})
	}
	return dst
}
